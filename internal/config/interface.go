package config

import (
	"context"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every grid definition found under the given paths and
	// translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// LoadBytes does the same for one in-memory document. The filename only
	// appears in errors and in each spec's FilePath.
	LoadBytes(ctx context.Context, src []byte, filename string) (*Model, error)
}
