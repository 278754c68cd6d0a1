package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/specialistvlad/spiralgrid/internal/config"
	"github.com/specialistvlad/spiralgrid/internal/ctxlog"
	"github.com/specialistvlad/spiralgrid/internal/render"
)

// stdinFileName stands in for a file name in errors about grids read from
// the app's input.
const stdinFileName = "<stdin>"

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	renderer render.Renderer
}

// NewApp is the constructor for the main application. Grid documents are
// read from inR when GridPath is StdinGridPath, results are written to outW
// and logs to logW. All grids are loaded here, so a returned App is ready to
// run.
func NewApp(inR io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	renderer, err := render.New(appConfig.OutputFormat)
	if err != nil {
		return nil, err
	}

	cfgModel, err := loadModel(ctx, inR, appConfig.GridPath, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.", "grids", len(cfgModel.Grids))

	if appConfig.Size != nil {
		for _, g := range cfgModel.Grids {
			if g.Name == GeneratedGridName {
				return nil, fmt.Errorf("grid %q in %s clashes with the grid generated from Size, rename one of them", g.Name, g.FilePath)
			}
		}
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		model:    cfgModel,
		renderer: renderer,
	}, nil
}

// loadModel resolves gridPath into grid specs. An empty path loads nothing.
func loadModel(ctx context.Context, inR io.Reader, gridPath string, loader config.Loader) (*config.Model, error) {
	switch gridPath {
	case "":
		return &config.Model{}, nil
	case StdinGridPath:
		src, err := io.ReadAll(inR)
		if err != nil {
			return nil, fmt.Errorf("failed to read grids from %s: %w", stdinFileName, err)
		}
		return loader.LoadBytes(ctx, src, stdinFileName)
	}

	// The loader quietly skips missing paths and non-.hcl files found while
	// walking; an explicit path must exist and name a grid file or directory.
	info, err := os.Stat(gridPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() && filepath.Ext(gridPath) != ".hcl" {
		return nil, fmt.Errorf("grid file %s must have a .hcl extension", gridPath)
	}
	return loader.Load(ctx, gridPath)
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
