package formulation

import "strings"

// InterceptName is the literal naming the intercept term in formulas and
// in derived column names.
const InterceptName = "1"

// Term is one column of a design matrix: either the intercept or a named
// numeric characteristic of the product table.
type Term struct {
	Name      string // column name; InterceptName for the intercept
	Intercept bool
}

// String returns the term as it appears in a formula.
func (t Term) String() string { return t.Name }

// Formulation is an ordered, duplicate-free list of terms parsed from a
// formula string. It is immutable after construction.
type Formulation struct {
	terms []Term
}

// New parses a formula string. It returns a ParseError when the string is
// blank, a term is neither "1" nor a valid identifier, or a term repeats.
func New(formula string) (*Formulation, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, ParseError{Formula: formula, Message: "formula is empty"}
	}

	tokens := strings.Split(formula, "+")
	terms := make([]Term, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	for _, token := range tokens {
		name := strings.TrimSpace(token)
		if name == "" {
			return nil, ParseError{Formula: formula, Message: "empty term"}
		}
		if name != InterceptName && !validIdentifier(name) {
			return nil, ParseError{Formula: formula, Token: name, Message: "term is neither an identifier nor the intercept literal"}
		}
		if _, dup := seen[name]; dup {
			return nil, ParseError{Formula: formula, Token: name, Message: "duplicate term"}
		}
		seen[name] = struct{}{}
		terms = append(terms, Term{Name: name, Intercept: name == InterceptName})
	}

	return &Formulation{terms: terms}, nil
}

// Terms returns the parsed terms in formula order.
func (f *Formulation) Terms() []Term {
	terms := make([]Term, len(f.terms))
	copy(terms, f.terms)
	return terms
}

// NumTerms returns the number of terms.
func (f *Formulation) NumTerms() int { return len(f.terms) }

// ColumnNames returns the design-matrix column names in formula order.
// The intercept column is named "1".
func (f *Formulation) ColumnNames() []string {
	names := make([]string, len(f.terms))
	for i, t := range f.terms {
		names[i] = t.Name
	}
	return names
}

// String returns the canonical form of the formula, terms joined by " + ".
func (f *Formulation) String() string {
	return strings.Join(f.ColumnNames(), " + ")
}

// validIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func validIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
