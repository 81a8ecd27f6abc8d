// Package groups partitions table rows by a grouping key and computes
// per-group aggregates. It backs the instrument builders, which need sums
// over markets and over (market, firm) pairs expanded back to row level.
package groups

// Groups is an immutable partition of rows 0..n-1 by a grouping key.
// Group codes are assigned in order of first appearance, so all derived
// slices are deterministic for a given key order.
type Groups struct {
	codes  []int // group code per row
	counts []int // rows per group
}

// New partitions rows by key. One pass, hash-based; no sorting.
func New[K comparable](keys []K) *Groups {
	codes := make([]int, len(keys))
	index := make(map[K]int, len(keys))
	counts := make([]int, 0, 8)
	for i, k := range keys {
		code, ok := index[k]
		if !ok {
			code = len(counts)
			index[k] = code
			counts = append(counts, 0)
		}
		codes[i] = code
		counts[code]++
	}
	return &Groups{codes: codes, counts: counts}
}

// Len returns the number of rows in the partition.
func (g *Groups) Len() int { return len(g.codes) }

// NumGroups returns the number of distinct groups.
func (g *Groups) NumGroups() int { return len(g.counts) }

// Counts returns the number of rows in each group, indexed by group code.
func (g *Groups) Counts() []int {
	counts := make([]int, len(g.counts))
	copy(counts, g.counts)
	return counts
}

// Sum accumulates values into per-group totals. Accumulation order within
// each group is the original row order (a single left-to-right pass), which
// keeps floating-point results reproducible. len(values) must equal Len().
func (g *Groups) Sum(values []float64) []float64 {
	if len(values) != len(g.codes) {
		panic("groups: value count does not match row count")
	}
	totals := make([]float64, len(g.counts))
	for i, v := range values {
		totals[g.codes[i]] += v
	}
	return totals
}

// Expand maps per-group totals back to a per-row slice. len(totals) must
// equal NumGroups().
func (g *Groups) Expand(totals []float64) []float64 {
	if len(totals) != len(g.counts) {
		panic("groups: total count does not match group count")
	}
	out := make([]float64, len(g.codes))
	for i, code := range g.codes {
		out[i] = totals[code]
	}
	return out
}

// Partition returns the row indices of each group in ascending order,
// indexed by group code. Useful for sharding work by group.
func (g *Groups) Partition() [][]int {
	rows := make([][]int, len(g.counts))
	for code, n := range g.counts {
		rows[code] = make([]int, 0, n)
	}
	for i, code := range g.codes {
		rows[code] = append(rows[code], i)
	}
	return rows
}
