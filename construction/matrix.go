package construction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"blpiv/formulation"
	"blpiv/products"
)

// BuildMatrix evaluates a formulation against a product table and returns
// the n x k characteristic matrix, one column per term in formulation order.
// Intercept terms evaluate to a column of ones.
//
// Columns are checked in term order: a term naming a column the table does
// not carry fails with a SchemaError, and the first missing or non-finite
// cell fails with a ValueError. Nothing is returned on error.
func BuildMatrix(f *formulation.Formulation, tbl products.Table) (*mat.Dense, error) {
	if f == nil {
		return nil, fmt.Errorf("construction: formulation is nil")
	}
	if tbl == nil {
		return nil, fmt.Errorf("construction: table is nil")
	}
	n := tbl.Len()
	if n == 0 {
		return nil, fmt.Errorf("construction: table has no rows")
	}

	terms := f.Terms()
	for _, term := range terms {
		if !term.Intercept && !tbl.HasColumn(term.Name) {
			return nil, products.SchemaError{Column: term.Name}
		}
	}

	x := mat.NewDense(n, len(terms), nil)
	for j, term := range terms {
		for i := 0; i < n; i++ {
			v := 1.0
			if !term.Intercept {
				v = tbl.Value(i, term.Name)
				if math.IsNaN(v) {
					return nil, products.ValueError{Row: i, Column: term.Name, Message: "value is missing"}
				}
				if math.IsInf(v, 0) {
					return nil, products.ValueError{Row: i, Column: term.Name, Message: "value is not finite"}
				}
			}
			x.Set(i, j, v)
		}
	}
	return x, nil
}

// checkIDs verifies that every row carries non-empty market and firm
// identifiers.
func checkIDs(tbl products.Table) error {
	for i := 0; i < tbl.Len(); i++ {
		if tbl.MarketID(i) == "" {
			return products.ValueError{Row: i, Column: "market_ids", Message: "identifier is empty"}
		}
		if tbl.FirmID(i) == "" {
			return products.ValueError{Row: i, Column: "firm_ids", Message: "identifier is empty"}
		}
	}
	return nil
}
