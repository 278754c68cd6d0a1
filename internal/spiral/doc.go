// Package spiral enumerates the cells of a square grid in clockwise spiral
// order, starting at the top-left corner.
//
// The traversal peels the grid one ring at a time. A boundary frame of four
// indices (top, bottom, left, right) delimits the region that has not been
// visited yet; each pass emits the top row, the right column, the bottom row
// and the left column of that region and then shrinks it. The bottom row and
// left column are only emitted while the frame still has more than one row or
// column left, which keeps the middle row or column of an odd-sized grid from
// being emitted twice.
//
// The package is free of shared state. Every function is safe to call
// concurrently on independent grids.
package spiral
