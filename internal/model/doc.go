// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory grid the application enumerates. Its
// core purpose is to turn a format-agnostic grid description into a square,
// bounds-checked container sized exactly to the grid.
//
// # Core Concepts
//
//   - Grid: an n×n block of numbers backed by a gonum dense matrix. An empty
//     grid (n = 0) carries no matrix at all.
//
//   - FSInfo: metadata that links a grid back to the file that declared it, so
//     that errors can name the offending file.
//
// Why a dense matrix?
//
// The grid is sized from the data it is built from, never from a fixed
// capacity. Any access outside [0, n) fails loudly instead of reading a
// neighbouring row, and the matrix never shares memory with the caller's
// input after construction.
package model
