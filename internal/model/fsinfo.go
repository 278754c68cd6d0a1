// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the FSInfo struct, which stores file system metadata.
//
// Why store the file path?
//
// The file path connects an in-memory grid back to its physical source on
// disk. Errors can then report not just *what* is wrong, but also exactly
// *in which file* the problematic grid is declared. Grids built directly from
// flags have no file and carry an empty path.
package model

type FSInfo struct {
	FilePath string
}

func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}

// String returns the file path, or "<generated>" for grids without a file.
func (i *FSInfo) String() string {
	if i == nil || i.FilePath == "" {
		return "<generated>"
	}
	return i.FilePath
}
