// Package construction builds the product-level matrices used in demand
// estimation for differentiated products: characteristic matrices, the
// classic instruments of Berry, Levinsohn and Pakes (1995), ownership
// matrices, and synthetic ID panels.
//
// # Core Functions
//
//   - BuildBLPInstruments: same-firm and rival characteristic sums per market
//   - BuildMatrix: characteristic matrix for a parsed formulation
//   - BuildOwnership: stacked per-market ownership matrices
//   - BuildIDData: balanced panels of market and firm identifiers
//
// # Architecture
//
// The package is organized by function:
//
//   - instruments.go: BuildBLPInstruments orchestration and the serial path
//   - parallel.go: per-market worker pool used for large panels
//   - matrix.go: formulation evaluation against a product table
//   - ownership.go: ownership matrix stacks and cooperation specifications
//   - iddata.go: synthetic identifier panels and merger counterfactuals
//   - options.go: functional options shared by the builders
//
// # Usage Example
//
//	f, err := formulation.New("1 + hpwt + air + mpd + space")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	table, err := products.NewFrame(marketIDs, firmIDs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for name, values := range characteristics {
//	    if err := table.AddColumn(name, values); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	z, err := construction.BuildBLPInstruments(ctx, f, table,
//	    construction.WithWorkers(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Mathematical Foundation
//
// Let x(j,t) be the characteristics of product j in market t, produced by
// firm f. The instruments for product j are
//
//	Other(j,t) = sum of x(r,t) over products r of firm f in t, r != j
//	Rival(j,t) = sum of x(r,t) over products r of other firms in t
//
// Both are computed from two grouped sums, so a build costs O(n*k) for n
// products and k formulation terms regardless of market sizes.
//
// # Determinism
//
// Instrument columns are accumulated in row order within each group, and the
// parallel path shards work so that every market is summed by exactly one
// worker in that same order. A build therefore produces bit-identical output
// for a given table, with any worker count.
//
// # References
//
//   - Berry, S., Levinsohn, J. and Pakes, A. (1995). Automobile prices in
//     market equilibrium
//   - Berry, S. (1994). Estimating discrete-choice models of product
//     differentiation
package construction
