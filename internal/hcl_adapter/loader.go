package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/spiralgrid/internal/config"
	"github.com/specialistvlad/spiralgrid/internal/ctxlog"
	"github.com/specialistvlad/spiralgrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is the top-level structure of a grid file. Only `grid` blocks are
// allowed; anything else is reported by the decoder.
type fileRoot struct {
	Grids []*GridBlock `hcl:"grid,block"`
}

// Load discovers every .hcl file under the given paths and merges their grid
// blocks into a single model, in discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	model := &config.Model{}
	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeInto(ctx, model, hclFile, file); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "files", len(hclFiles), "grids", len(model.Grids))
	return model, nil
}

// LoadBytes parses a single in-memory grid document. The filename is only
// used in diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	model := &config.Model{}
	if err := l.decodeInto(ctx, model, hclFile, filename); err != nil {
		return nil, err
	}
	return model, nil
}

// decodeInto decodes one parsed file and appends its grids to the model.
func (l *Loader) decodeInto(ctx context.Context, model *config.Model, hclFile *hcl.File, filename string) error {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	diags := gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	for _, block := range root.Grids {
		if prev := findGrid(model, block.Name); prev != nil {
			return fmt.Errorf("duplicate grid %q in %s, first declared in %s", block.Name, filename, prev.FilePath)
		}

		spec, err := l.translateGrid(ctx, block, filename)
		if err != nil {
			return err
		}
		model.Grids = append(model.Grids, spec)
		logger.Debug("Grid block translated.", "grid", spec.Name, "file", filename)
	}
	return nil
}

func findGrid(model *config.Model, name string) *config.GridSpec {
	for _, g := range model.Grids {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to find grid files in %s: %w", path, err)
			}
			for _, f := range files {
				add(f)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}
	return allFiles, nil
}
