package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/spiralgrid/internal/config"
	"github.com/specialistvlad/spiralgrid/internal/ctxlog"
	"github.com/specialistvlad/spiralgrid/internal/model"
)

// Run enumerates every configured grid in order and renders each result. The
// first failing grid stops the run; grids rendered before it stay written.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	specs := a.gridSpecs()
	if len(specs) == 0 {
		a.logger.Warn("No grids found, nothing to enumerate.", "grid_path", a.config.GridPath)
		return nil
	}

	a.logger.Info("🌀 Enumerating grids...", "count", len(specs))
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.runGrid(ctx, spec); err != nil {
			return err
		}
	}
	a.logger.Info("🏁 Enumeration finished.", "count", len(specs))

	a.logger.Debug("App.Run method finished.")
	return nil
}

// gridSpecs returns the generated grid, if any, followed by the file grids.
func (a *App) gridSpecs() []*config.GridSpec {
	var specs []*config.GridSpec
	if a.config.Size != nil {
		size := *a.config.Size
		specs = append(specs, &config.GridSpec{
			Name: GeneratedGridName,
			Size: &size,
			Fill: config.DefaultFill(),
		})
	}
	return append(specs, a.model.Grids...)
}

func (a *App) runGrid(ctx context.Context, spec *config.GridSpec) error {
	logger := ctxlog.FromContext(ctx).With("grid", spec.Name)

	grid, err := model.NewGridFromSpec(spec)
	if err != nil {
		return fmt.Errorf("failed to build grid: %w", err)
	}
	logger.Debug("Grid built.", "size", grid.Size(), "file", grid.FSInformation.String())

	order, err := grid.Spiral()
	if err != nil {
		return fmt.Errorf("failed to enumerate grid %q: %w", spec.Name, err)
	}
	logger.Debug("Spiral order computed.", "values", len(order))

	if err := a.renderer.Render(a.outW, grid, order); err != nil {
		return fmt.Errorf("failed to render grid %q: %w", spec.Name, err)
	}
	return nil
}
