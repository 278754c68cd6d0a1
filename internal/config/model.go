package config

// Model is the unified, format-agnostic representation of every grid
// declared across all loaded files, in declaration order.
type Model struct {
	Grids []*GridSpec
}

// GridSpec is the format-agnostic representation of a `grid` block. Exactly
// one of Rows or Size is the source of the grid's values; Fill only applies
// together with Size.
type GridSpec struct {
	Name     string
	FilePath string

	// Size is the side length of the grid. When Rows is also set, only the
	// top-left Size×Size frame of Rows is used.
	Size *int

	// Rows holds explicit cell values, row by row.
	Rows [][]float64

	// Fill describes a generated row-major grid.
	Fill *Fill
}

// Fill is an arithmetic row-major fill: start, start+step, start+2*step, ...
type Fill struct {
	Start float64
	Step  float64
}

// DefaultFill reproduces the 1..n*n numbering of a freshly built grid.
func DefaultFill() *Fill {
	return &Fill{Start: 1, Step: 1}
}
