package construction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"blpiv/internal/groups"
	"blpiv/products"
)

// Kappa specifies cooperation between two firms: the returned value becomes
// the ownership entry for a product pair produced by the two firms in the
// same market.
type Kappa func(firm, rival string) float64

// BuildOwnership builds the stacked ownership matrices for a product table,
// one J_t x J_t block per market, padded with NaN columns up to the largest
// market. A nil kappa selects the standard specification: 1 for products of
// the same firm, 0 otherwise.
//
// Blocks follow the markets' order of first appearance and rows within a
// block keep table order, so for a table whose markets are contiguous the
// i-th output row describes the i-th product. Merger counterfactuals come
// from building against a products.Frame view with another firm column
// selected.
func BuildOwnership(tbl products.Table, kappa Kappa) (*mat.Dense, error) {
	if tbl == nil {
		return nil, fmt.Errorf("construction: table is nil")
	}
	n := tbl.Len()
	if n == 0 {
		return nil, fmt.Errorf("construction: table has no rows")
	}
	if err := checkIDs(tbl); err != nil {
		return nil, err
	}
	if kappa == nil {
		kappa = func(firm, rival string) float64 {
			if firm == rival {
				return 1
			}
			return 0
		}
	}

	marketIDs := make([]string, n)
	firmIDs := make([]string, n)
	for i := 0; i < n; i++ {
		marketIDs[i] = tbl.MarketID(i)
		firmIDs[i] = tbl.FirmID(i)
	}
	partition := groups.New(marketIDs).Partition()

	widest := 0
	for _, rows := range partition {
		if len(rows) > widest {
			widest = len(rows)
		}
	}

	out := mat.NewDense(n, widest, nil)
	i := 0
	for _, rows := range partition {
		for _, j := range rows {
			for c, g := range rows {
				out.Set(i, c, kappa(firmIDs[j], firmIDs[g]))
			}
			for c := len(rows); c < widest; c++ {
				out.Set(i, c, math.NaN())
			}
			i++
		}
	}
	return out, nil
}
