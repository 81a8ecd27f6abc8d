package testutil

import (
	"math/rand"
	"strconv"
	"testing"

	"blpiv/products"
)

// Panel builds a balanced product table for tests: numMarkets markets with
// productsPerMarket products each, firms assigned round-robin over numFirms,
// and one seeded pseudo-random characteristic column per name. The same
// arguments always produce the same table.
func Panel(tb testing.TB, numMarkets, productsPerMarket, numFirms int, columns ...string) *products.Frame {
	tb.Helper()

	n := numMarkets * productsPerMarket
	marketIDs := make([]string, 0, n)
	firmIDs := make([]string, 0, n)
	for m := 0; m < numMarkets; m++ {
		for j := 0; j < productsPerMarket; j++ {
			marketIDs = append(marketIDs, "m"+strconv.Itoa(m))
			firmIDs = append(firmIDs, "f"+strconv.Itoa(j%numFirms))
		}
	}

	frame, err := products.NewFrame(marketIDs, firmIDs)
	if err != nil {
		tb.Fatalf("build panel: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for _, name := range columns {
		values := make([]float64, n)
		for i := range values {
			values[i] = rng.Float64() * 10
		}
		if err := frame.AddColumn(name, values); err != nil {
			tb.Fatalf("add column %q: %v", name, err)
		}
	}
	return frame
}
