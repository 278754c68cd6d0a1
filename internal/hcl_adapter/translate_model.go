package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/spiralgrid/internal/config"
	"github.com/specialistvlad/spiralgrid/internal/ctxlog"
)

// GridBlock represents a single `grid` block for initial decoding from HCL.
type GridBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// FillBlock is the optional `fill` block inside a grid.
type FillBlock struct {
	Start *float64 `hcl:"start,optional"`
	Step  *float64 `hcl:"step,optional"`
}

var gridBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "size"},
		{Name: "rows"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "fill"},
	},
}

// translateGrid evaluates a grid block's attributes and converts them into
// the format-agnostic GridSpec.
func (l *Loader) translateGrid(ctx context.Context, block *GridBlock, filename string) (*config.GridSpec, error) {
	logger := ctxlog.FromContext(ctx)
	evalCtx := newEvalContext()

	content, diags := block.Body.Content(gridBodySchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid grid %q in %s: %w", block.Name, filename, diags)
	}

	spec := &config.GridSpec{
		Name:     block.Name,
		FilePath: filename,
	}

	if attr, ok := content.Attributes["size"]; ok {
		size, diags := decodeSize(attr.Expr, evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid size for grid %q in %s: %w", block.Name, filename, diagnosticsError{diags})
		}
		spec.Size = &size
	}

	if attr, ok := content.Attributes["rows"]; ok {
		rows, diags := decodeRows(attr.Expr, evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid rows for grid %q in %s: %w", block.Name, filename, diags)
		}
		if rows == nil {
			rows = [][]float64{}
		}
		spec.Rows = rows
	}

	fillBlock, diags := singleBlock(content.Blocks, "fill", block.Name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid grid %q in %s: %w", block.Name, filename, diags)
	}
	if fillBlock != nil {
		var fb FillBlock
		if diags := gohcl.DecodeBody(fillBlock.Body, evalCtx, &fb); diags.HasErrors() {
			return nil, fmt.Errorf("invalid fill for grid %q in %s: %w", block.Name, filename, diags)
		}
		spec.Fill = config.DefaultFill()
		if fb.Start != nil {
			spec.Fill.Start = *fb.Start
		}
		if fb.Step != nil {
			spec.Fill.Step = *fb.Step
		}
		if spec.Size == nil {
			return nil, fmt.Errorf("grid %q in %s: a fill block requires size", block.Name, filename)
		}
	}

	logger.Debug("Grid attributes evaluated.",
		"grid", spec.Name,
		"has_size", spec.Size != nil,
		"row_count", len(spec.Rows),
		"has_fill", spec.Fill != nil,
	)
	return spec, nil
}
