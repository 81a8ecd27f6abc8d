// Package products defines the tabular product data consumed by the
// construction package: the Table interface (row-indexed access to market
// and firm identifiers and named numeric characteristics) and Frame, a
// column-oriented implementation of it.
//
// Identifiers are strings; an empty string marks a missing identifier.
// Numeric cells are float64; NaN marks a missing value. Neither is ever
// coerced: referencing a missing value fails with a ValueError.
package products
