package products

import (
	"fmt"
	"math"
)

// Table is row-indexed product data. Rows are products; every row carries a
// market identifier, a firm identifier, and zero or more named float64
// characteristics.
//
// Implementations must be safe for concurrent reads. MarketID, FirmID and
// Value panic when i is out of range; Value returns NaN when the named
// column does not exist.
type Table interface {
	Len() int
	HasColumn(name string) bool
	MarketID(i int) string
	FirmID(i int) string
	Value(i int, name string) float64
}

var _ Table = (*Frame)(nil)

// Frame is a column-oriented Table. Identifier and characteristic slices are
// copied on the way in, so a Frame never aliases caller memory.
//
// A Frame can carry several firm identifier columns (pre- and post-merger
// assignments). FirmID reads the column selected by SelectFirms; a fresh
// Frame reads the first.
type Frame struct {
	n          int
	marketIDs  []string
	firmIDs    [][]string
	firmsIndex int

	names   []string
	columns map[string][]float64
}

// NewFrame builds a Frame from parallel market and firm identifier slices.
// The two slices must have equal length; zero rows is allowed.
func NewFrame(marketIDs, firmIDs []string) (*Frame, error) {
	if len(marketIDs) != len(firmIDs) {
		return nil, fmt.Errorf("products: %d market identifiers but %d firm identifiers", len(marketIDs), len(firmIDs))
	}
	return &Frame{
		n:         len(marketIDs),
		marketIDs: append([]string(nil), marketIDs...),
		firmIDs:   [][]string{append([]string(nil), firmIDs...)},
		columns:   make(map[string][]float64),
	}, nil
}

// AddColumn attaches a named characteristic column. The slice is copied.
// Missing cells are represented by NaN and surface as a ValueError only when
// a computation references them.
func (f *Frame) AddColumn(name string, values []float64) error {
	if name == "" {
		return fmt.Errorf("products: column name is empty")
	}
	if _, ok := f.columns[name]; ok {
		return fmt.Errorf("products: duplicate column %q", name)
	}
	if len(values) != f.n {
		return fmt.Errorf("products: column %q has %d values for %d rows", name, len(values), f.n)
	}
	f.names = append(f.names, name)
	f.columns[name] = append([]float64(nil), values...)
	return nil
}

// AddFirmIDs attaches a further firm identifier column, as produced by a
// merger scenario. The slice is copied.
func (f *Frame) AddFirmIDs(ids []string) error {
	if len(ids) != f.n {
		return fmt.Errorf("products: firm identifier column has %d values for %d rows", len(ids), f.n)
	}
	f.firmIDs = append(f.firmIDs, append([]string(nil), ids...))
	return nil
}

// SelectFirms returns a view of the frame whose FirmID reads the given firm
// identifier column: 0 is the original assignment, higher indices are merger
// counterfactuals in the order they were added. The view shares the frame's
// storage.
func (f *Frame) SelectFirms(index int) (*Frame, error) {
	if index < 0 || index >= len(f.firmIDs) {
		return nil, fmt.Errorf("products: firm identifier column %d out of range [0, %d)", index, len(f.firmIDs))
	}
	view := *f
	view.firmsIndex = index
	return &view, nil
}

// FirmColumns reports how many firm identifier columns the frame carries.
func (f *Frame) FirmColumns() int {
	return len(f.firmIDs)
}

// Columns lists the characteristic column names in insertion order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.names...)
}

func (f *Frame) Len() int {
	return f.n
}

func (f *Frame) HasColumn(name string) bool {
	_, ok := f.columns[name]
	return ok
}

func (f *Frame) MarketID(i int) string {
	return f.marketIDs[i]
}

func (f *Frame) FirmID(i int) string {
	return f.firmIDs[f.firmsIndex][i]
}

func (f *Frame) Value(i int, name string) float64 {
	col, ok := f.columns[name]
	if !ok {
		return math.NaN()
	}
	return col[i]
}
