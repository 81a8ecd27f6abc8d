// Package formulation parses the linear formula language used to describe
// design matrices of product characteristics.
//
// A formula is a "+"-separated list of terms:
//
//	<formula> ::= <term> ("+" <term>)*
//	<term>    ::= "1" | identifier
//
// "1" denotes the intercept (a column of ones) and may appear anywhere in
// the formula; identifiers name numeric columns of a product table and
// follow the usual [A-Za-z_][A-Za-z0-9_]* shape. Whitespace around "+" is
// insignificant. Terms must be unique, and their order fixes the column
// order of every matrix later built from the formulation.
//
// Parsing is pure: the formulation carries no table schema, so a term
// naming an absent column only fails once the formulation is evaluated
// against a concrete table (see the construction package).
//
//	f, err := formulation.New("1 + hpwt + air + mpd + space")
//	if err != nil { ... }
//	f.ColumnNames() // ["1" "hpwt" "air" "mpd" "space"]
package formulation
