// Package config defines the format-agnostic description of the grids the
// application enumerates, along with the Loader interface for reading that
// description from a concrete source.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
