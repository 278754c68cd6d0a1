package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/spiralgrid/internal/app"
	"github.com/specialistvlad/spiralgrid/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
	Dir       string
}

// RunGridTest provides a standardized harness for running integration tests
// using a default background context.
func RunGridTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunGridTestWithContext(context.Background(), t, files, cfg)
}

// RunGridTestWithContext writes the given files below a temporary directory,
// points the app at it and runs the full load/enumerate/render lifecycle.
//
// File names are relative to the temporary directory. When cfg.GridPath is
// empty and files were given, the whole directory is used; a relative
// cfg.GridPath is resolved against it. Empty format fields default to text
// and the log level to debug.
func RunGridTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return runGridTest(ctx, t, files, "", cfg)
}

// RunGridTestWithStdin feeds stdin to the app as its input and reads the grids
// from it, as `spiralgrid -` does.
func RunGridTestWithStdin(t *testing.T, stdin string, cfg app.Config) *HarnessResult {
	t.Helper()
	cfg.GridPath = app.StdinGridPath
	return runGridTest(context.Background(), t, nil, stdin, cfg)
}

func runGridTest(ctx context.Context, t *testing.T, files map[string]string, stdin string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	switch {
	case cfg.GridPath == "" && len(files) > 0:
		cfg.GridPath = tmpDir
	case cfg.GridPath != "" && cfg.GridPath != app.StdinGridPath && !filepath.IsAbs(cfg.GridPath):
		cfg.GridPath = filepath.Join(tmpDir, cfg.GridPath)
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	output := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	result := &HarnessResult{Dir: tmpDir}
	testApp, err := app.NewApp(strings.NewReader(stdin), output, logBuffer, &cfg, hcl_adapter.NewLoader())
	if err != nil {
		result.Err = fmt.Errorf("application startup failed | %w", err)
	} else {
		result.App = testApp
		result.Err = testApp.Run(ctx)
	}

	if os.Getenv("SPIRALGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	result.Output = output.String()
	result.LogOutput = logBuffer.String()
	return result
}
