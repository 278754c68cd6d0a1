// Package render is the presentation side of the tool: it writes a grid and
// its spiral order to an io.Writer in one of the supported formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/spiralgrid/internal/model"
)

// Renderer writes one enumerated grid.
type Renderer interface {
	Render(w io.Writer, g *model.Grid, order []float64) error
}

// Formats lists the names accepted by New.
var Formats = []string{"text", "json"}

// New returns the renderer registered under format.
func New(format string) (Renderer, error) {
	switch format {
	case "text":
		return &Text{}, nil
	case "json":
		return &JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: must be one of %s", format, strings.Join(Formats, ", "))
	}
}

// Text prints the grid row by row followed by a "Spiral Order:" line.
type Text struct{}

// Render implements Renderer.
func (r *Text) Render(w io.Writer, g *model.Grid, order []float64) error {
	var b strings.Builder
	n := g.Size()
	fmt.Fprintf(&b, "# %s (%dx%d)\n", g.Name, n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatNumber(g.At(r, c)))
		}
		b.WriteByte('\n')
	}
	b.WriteString("Spiral Order:")
	if len(order) > 0 {
		b.WriteByte(' ')
		b.WriteString(joinNumbers(order))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON prints one JSON object per grid, newline delimited.
type JSON struct{}

type jsonGrid struct {
	Name  string      `json:"name"`
	File  string      `json:"file,omitempty"`
	Size  int         `json:"size"`
	Rows  [][]float64 `json:"rows"`
	Order []float64   `json:"order"`
}

// Render implements Renderer.
func (r *JSON) Render(w io.Writer, g *model.Grid, order []float64) error {
	out := jsonGrid{
		Name:  g.Name,
		Size:  g.Size(),
		Rows:  g.Rows(),
		Order: order,
	}
	if g.FSInformation != nil {
		out.File = g.FSInformation.FilePath
	}
	// Keep empty grids as [] rather than null.
	if out.Order == nil {
		out.Order = []float64{}
	}

	return json.NewEncoder(w).Encode(out)
}

// formatNumber uses the shortest exact representation, so whole numbers
// print without a fractional part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, " ")
}
