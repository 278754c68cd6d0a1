package spiral

import "iter"

// Cell is a zero-based (row, column) coordinate inside a grid.
type Cell struct {
	Row int
	Col int
}

// Validate checks that grid can be traversed as an n×n grid: n must pass
// CheckSize, and the grid must have at least n rows, each of the first n of
// which has at least n columns. Cells outside [0, n) are ignored.
func Validate[T any](grid [][]T, n int) error {
	if n < 0 || n > MaxSize || len(grid) < n {
		return &SizeError{N: n, Rows: len(grid), Row: -1}
	}
	for i := 0; i < n; i++ {
		if len(grid[i]) < n {
			return &SizeError{N: n, Rows: len(grid), Row: i, Cols: len(grid[i])}
		}
	}
	return nil
}

// Order returns the values of the n×n grid in clockwise spiral order. The
// result always holds exactly n*n values. The grid is validated before it is
// read; on failure no values are returned.
func Order[T any](grid [][]T, n int) ([]T, error) {
	if err := Validate(grid, n); err != nil {
		return nil, err
	}

	out := make([]T, 0, n*n)
	walk(n, func(c Cell) bool {
		out = append(out, grid[c.Row][c.Col])
		return true
	})
	return out, nil
}

// All is the lazy form of Order. The grid is validated up front, so the
// returned sequence never fails. The grid must not be mutated while the
// sequence is being consumed.
func All[T any](grid [][]T, n int) (iter.Seq[T], error) {
	if err := Validate(grid, n); err != nil {
		return nil, err
	}

	return func(yield func(T) bool) {
		walk(n, func(c Cell) bool {
			return yield(grid[c.Row][c.Col])
		})
	}, nil
}

// Cells returns the coordinates of an n×n grid in clockwise spiral order.
func Cells(n int) (iter.Seq[Cell], error) {
	if err := CheckSize(n); err != nil {
		return nil, err
	}

	return func(yield func(Cell) bool) {
		walk(n, yield)
	}, nil
}

// walk peels an n×n frame ring by ring, calling yield for every cell until it
// returns false.
func walk(n int, yield func(Cell) bool) {
	top, bottom, left, right := 0, n-1, 0, n-1

	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			if !yield(Cell{Row: top, Col: c}) {
				return
			}
		}
		top++

		for r := top; r <= bottom; r++ {
			if !yield(Cell{Row: r, Col: right}) {
				return
			}
		}
		right--

		// The frame may have collapsed to a single row.
		if top <= bottom {
			for c := right; c >= left; c-- {
				if !yield(Cell{Row: bottom, Col: c}) {
					return
				}
			}
			bottom--
		}

		// Or to a single column.
		if left <= right {
			for r := bottom; r >= top; r-- {
				if !yield(Cell{Row: r, Col: left}) {
					return
				}
			}
			left++
		}
	}
}
