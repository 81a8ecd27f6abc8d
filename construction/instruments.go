package construction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"blpiv/formulation"
	"blpiv/internal/groups"
	"blpiv/products"
)

// pairKey identifies a firm within a market. Products sharing a pairKey are
// produced by the same firm in the same market.
type pairKey struct {
	market string
	firm   string
}

// BuildBLPInstruments computes the classic instrument matrix for a product
// table: for every formulation term, the sum of the characteristic over the
// same firm's other products in the market, and the sum over all rival
// products in the market.
//
// The result has one row per product, in table order, and the columns
// [Other(X), Rival(X)], each block one column per term in formulation order.
// WithOwnCharacteristics prepends the X block itself.
//
// Every row must carry non-empty market and firm identifiers, every term a
// finite value; violations fail with a ValueError or SchemaError and no
// partial result. The build can be cancelled through ctx.
func BuildBLPInstruments(ctx context.Context, f *formulation.Formulation, tbl products.Table, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts)

	if f == nil {
		return nil, fmt.Errorf("construction: formulation is nil")
	}
	if tbl == nil {
		return nil, fmt.Errorf("construction: table is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	n := tbl.Len()
	k := f.NumTerms()

	if err := checkIDs(tbl); err != nil {
		return nil, err
	}
	x, err := BuildMatrix(f, tbl)
	if err != nil {
		return nil, err
	}
	cfg.logger.DebugContext(ctx, "characteristics gathered",
		slog.Int("rows", n),
		slog.Int("terms", k))

	marketIDs := make([]string, n)
	pairs := make([]pairKey, n)
	for i := 0; i < n; i++ {
		marketIDs[i] = tbl.MarketID(i)
		pairs[i] = pairKey{market: marketIDs[i], firm: tbl.FirmID(i)}
	}
	markets := groups.New(marketIDs)

	cfg.logger.InfoContext(ctx, "building instruments",
		slog.Int("products", n),
		slog.Int("markets", markets.NumGroups()),
		slog.Int("terms", k),
		slog.Int("workers", cfg.workers))

	width := 2 * k
	offset := 0
	if cfg.own {
		width = 3 * k
		offset = k
	}
	out := mat.NewDense(n, width, nil)
	if cfg.own {
		out.Slice(0, n, 0, k).(*mat.Dense).Copy(x)
	}

	if cfg.workers > 1 {
		err = buildParallel(ctx, markets.Partition(), pairs, x, out, offset, cfg.workers)
	} else {
		err = buildSerial(ctx, markets, pairs, x, out, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("sum characteristics: %w", err)
	}

	cfg.logger.InfoContext(ctx, "instruments built",
		slog.Int("rows", n),
		slog.Int("columns", width),
		slog.Duration("duration", time.Since(start)))
	return out, nil
}

// buildSerial fills the instrument blocks one term at a time from two
// grouped sums: same-firm sums over market-firm pairs and market totals.
// Groups accumulate in row order, which the parallel path reproduces.
func buildSerial(ctx context.Context, markets *groups.Groups, pairs []pairKey, x, out *mat.Dense, offset int) error {
	paired := groups.New(pairs)
	n, k := x.Dims()
	col := make([]float64, n)
	for t := 0; t < k; t++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		mat.Col(col, t, x)
		pairSum := paired.Expand(paired.Sum(col))
		marketSum := markets.Expand(markets.Sum(col))
		for i := 0; i < n; i++ {
			out.Set(i, offset+t, pairSum[i]-col[i])
			out.Set(i, offset+k+t, marketSum[i]-pairSum[i])
		}
	}
	return nil
}

// ColumnNames returns the instrument column names in result order:
// other_<term> and rival_<term> blocks, preceded by own_<term> when
// WithOwnCharacteristics is set. Options other than WithOwnCharacteristics
// do not affect the names.
func ColumnNames(f *formulation.Formulation, opts ...Option) []string {
	cfg := newConfig(opts)
	terms := f.Terms()

	names := make([]string, 0, 3*len(terms))
	if cfg.own {
		for _, term := range terms {
			names = append(names, "own_"+term.Name)
		}
	}
	for _, term := range terms {
		names = append(names, "other_"+term.Name)
	}
	for _, term := range terms {
		names = append(names, "rival_"+term.Name)
	}
	return names
}
