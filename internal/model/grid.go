// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Grid structure, the square container that is handed
// to the spiral enumerator.
//
// Why several constructors?
//
// Grids reach the application in two shapes: a bare size (the classic 1..n*n
// demo) or explicit rows from a grid file, optionally cut down to a smaller
// frame. Each constructor validates its own input against spiral.MaxSize and
// produces the same n×n container, so everything downstream can rely on the
// grid being square and allocatable.
package model

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/spiralgrid/internal/config"
	"github.com/specialistvlad/spiralgrid/internal/spiral"
	"gonum.org/v1/gonum/mat"
)

// Grid is an n×n block of numbers.
type Grid struct {
	Name          string
	FSInformation *FSInfo

	// data is nil for an empty grid; gonum does not allow zero-sized matrices.
	data *mat.Dense
}

// NewSequentialGrid builds an n×n grid filled row by row with an arithmetic
// sequence. A nil fill numbers the cells 1..n*n.
func NewSequentialGrid(name string, n int, fill *config.Fill) (*Grid, error) {
	if err := spiral.CheckSize(n); err != nil {
		return nil, fmt.Errorf("grid %q: %w", name, err)
	}
	if fill == nil {
		fill = config.DefaultFill()
	}

	g := &Grid{Name: name, FSInformation: NewFSInfo("")}
	if n == 0 {
		return g, nil
	}

	values := make([]float64, n*n)
	for i := range values {
		values[i] = fill.Start + float64(i)*fill.Step
	}
	g.data = mat.NewDense(n, n, values)
	return g, nil
}

// NewGridFromRows builds a grid from explicit rows. The number of rows sets
// the size, and every row must have at least that many columns.
func NewGridFromRows(name string, rows [][]float64) (*Grid, error) {
	return NewGridFromFrame(name, rows, len(rows))
}

// NewGridFromFrame builds an n×n grid from the top-left n×n frame of rows.
// Rows and columns beyond the frame are ignored; a frame that does not fit
// is an error.
func NewGridFromFrame(name string, rows [][]float64, n int) (*Grid, error) {
	if err := spiral.Validate(rows, n); err != nil {
		return nil, fmt.Errorf("grid %q: %w", name, err)
	}

	g := &Grid{Name: name, FSInformation: NewFSInfo("")}
	if n == 0 {
		return g, nil
	}

	g.data = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		g.data.SetRow(i, rows[i][:n])
	}
	return g, nil
}

// NewGridFromSpec builds a grid from its format-agnostic description.
func NewGridFromSpec(spec *config.GridSpec) (*Grid, error) {
	var (
		g   *Grid
		err error
	)

	switch {
	case spec.Rows != nil && spec.Fill != nil:
		err = fmt.Errorf("grid %q: rows and fill cannot be used together", spec.Name)
	case spec.Rows != nil && spec.Size != nil:
		g, err = NewGridFromFrame(spec.Name, spec.Rows, *spec.Size)
	case spec.Rows != nil:
		g, err = NewGridFromRows(spec.Name, spec.Rows)
	case spec.Size != nil:
		g, err = NewSequentialGrid(spec.Name, *spec.Size, spec.Fill)
	default:
		err = fmt.Errorf("grid %q: %w", spec.Name, errNoSource)
	}

	if err != nil {
		if spec.FilePath != "" {
			return nil, fmt.Errorf("%s: %w", spec.FilePath, err)
		}
		return nil, err
	}

	g.FSInformation = NewFSInfo(spec.FilePath)
	return g, nil
}

var errNoSource = errors.New("either rows or size must be set")

// Size returns n for an n×n grid.
func (g *Grid) Size() int {
	if g.data == nil {
		return 0
	}
	n, _ := g.data.Dims()
	return n
}

// At returns the value in row r, column c. It panics if either index is
// outside [0, Size()).
func (g *Grid) At(r, c int) float64 {
	if g.data == nil {
		panic(fmt.Sprintf("model: grid %q is empty, cannot read (%d, %d)", g.Name, r, c))
	}
	return g.data.At(r, c)
}

// Rows returns views of the grid's rows. The views share memory with the
// grid and must not be modified.
func (g *Grid) Rows() [][]float64 {
	n := g.Size()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = g.data.RawRowView(i)
	}
	return rows
}

// Spiral returns the grid's values in clockwise spiral order.
func (g *Grid) Spiral() ([]float64, error) {
	return spiral.Order(g.Rows(), g.Size())
}
