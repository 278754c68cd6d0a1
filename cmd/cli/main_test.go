package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/spiralgrid/internal/cli"
	"github.com/specialistvlad/spiralgrid/internal/spiral"
	"github.com/stretchr/testify/require"
)

func TestRun_GeneratedGrid(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-n", "4"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, `# generated (4x4)
1 2 3 4
5 6 7 8
9 10 11 12
13 14 15 16
Spiral Order: 1 2 3 4 8 12 16 15 14 13 9 5 6 7 11 10
`, out.String())
	require.Empty(t, errOut.String(), "nothing is logged at the default warn level")
}

func TestRun_GridFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	gridHCL := `
		grid "nine" {
			rows = chunklist(range(1, 10), 3)
		}
	`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(gridHCL), 0600), "failed to set up test file")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, errOut, []string{"--log-level=info", filePath})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "Spiral Order: 1 2 3 6 9 8 7 4 5\n")
	require.Contains(t, errOut.String(), "Enumeration finished.")
}

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A syntax error fails while the app is being constructed.
	invalidHCL := `
		grid "broken" {
			size = 3
		// Missing closing brace here
	`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0600), "failed to set up test file")

	// --- Act ---
	runErr := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "application startup failed")
	require.Contains(t, runErr.Error(), "failed to parse")
}

func TestRun_InvalidGridSize(t *testing.T) {
	t.Parallel()

	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(`grid "short" { rows = [[1, 2], [3]] }`), 0600))

	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{filePath})

	require.ErrorIs(t, err, spiral.ErrInvalidSize)
}

func TestRun_GridsFromStdin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stdin := strings.NewReader(`grid "piped" { rows = [[1, 2], [3, 4]] }`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), stdin, out, &bytes.Buffer{}, []string{"-"})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "# piped (2x2)\n1 2\n3 4\nSpiral Order: 1 2 4 3\n", out.String())
}

func TestRun_GridFileWithoutHCLExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	filePath := filepath.Join(t.TempDir(), "grids.txt")
	require.NoError(t, os.WriteFile(filePath, []byte(`grid "x" { size = 1 }`), 0600))
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-g", filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "must have a .hcl extension")
	require.Empty(t, out.String())
}

func TestRun_SizeAboveMaximum(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-n", "4294967296"})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "exceeds the maximum of 4096")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
