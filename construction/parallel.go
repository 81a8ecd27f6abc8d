package construction

import (
	"context"

	"github.com/alitto/pond/v2"

	"gonum.org/v1/gonum/mat"
)

// buildParallel shards instrument computation by market. Rows of different
// markets never share an output row, so workers write disjoint memory.
func buildParallel(ctx context.Context, partition [][]int, pairs []pairKey, x, out *mat.Dense, offset, workers int) error {
	pool := pond.NewPool(workers, pond.WithQueueSize(len(partition)))
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	for _, rows := range partition {
		rows := rows // per-iteration copy: go.mod targets go 1.21 loopvar semantics
		group.Submit(func() {
			if groupCtx.Err() != nil {
				return
			}
			sumMarket(rows, pairs, x, out, offset)
		})
	}
	return group.Wait()
}

// sumMarket fills the instrument rows of one market. rows is ascending, so
// every firm sum accumulates values in the same order as the serial path and
// the two paths agree bit for bit.
func sumMarket(rows []int, pairs []pairKey, x, out *mat.Dense, offset int) {
	_, k := x.Dims()
	firmSums := make(map[string]float64, 8)
	for t := 0; t < k; t++ {
		clear(firmSums)
		total := 0.0
		for _, r := range rows {
			v := x.At(r, t)
			total += v
			firmSums[pairs[r].firm] += v
		}
		for _, r := range rows {
			pairSum := firmSums[pairs[r].firm]
			out.Set(r, offset+t, pairSum-x.At(r, t))
			out.Set(r, offset+k+t, total-pairSum)
		}
	}
}
