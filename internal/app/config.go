package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/specialistvlad/spiralgrid/internal/render"
	"github.com/specialistvlad/spiralgrid/internal/spiral"
)

// GeneratedGridName is the name given to the grid built from Config.Size.
const GeneratedGridName = "generated"

// StdinGridPath as GridPath reads a single grid document from the app's input.
const StdinGridPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GridPath string // .hcl file, directory or StdinGridPath, optional
	Size     *int   // side of a generated 1..n*n grid, nil for none

	OutputFormat string
	LogFormat    string
	LogLevel     string
}

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GridPath == "" && cfg.Size == nil {
		return nil, errors.New("either GridPath or Size is required")
	}
	if cfg.Size != nil {
		if err := spiral.CheckSize(*cfg.Size); err != nil {
			return nil, err
		}
	}
	if !slices.Contains(render.Formats, cfg.OutputFormat) {
		return nil, fmt.Errorf("invalid output format %q: must be 'text' or 'json'", cfg.OutputFormat)
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
