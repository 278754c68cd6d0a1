package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/spiralgrid/internal/app"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectedCode   int
		expectedErr    string
		expectedConfig *app.Config
		expectedOutput string
	}{
		{
			name: "Happy Path with all flags",
			args: []string{
				"-grid", "/test/grid",
				"--size=4",
				"--format=json",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				GridPath:     "/test/grid",
				Size:         intPtr(4),
				OutputFormat: "json",
				LogLevel:     "debug",
				LogFormat:    "json",
			},
		},
		{
			name: "Shorthand flags and defaults",
			args: []string{"-g", "/short/path"},
			expectedConfig: &app.Config{
				GridPath:     "/short/path",
				OutputFormat: "text",
				LogLevel:     "warn",
				LogFormat:    "text",
			},
		},
		{
			name: "Positional argument for path",
			args: []string{"/positional/path"},
			expectedConfig: &app.Config{
				GridPath:     "/positional/path",
				OutputFormat: "text",
				LogLevel:     "warn",
				LogFormat:    "text",
			},
		},
		{
			name: "Dash reads grids from stdin",
			args: []string{"-"},
			expectedConfig: &app.Config{
				GridPath:     app.StdinGridPath,
				OutputFormat: "text",
				LogLevel:     "warn",
				LogFormat:    "text",
			},
		},
		{
			name: "Size shorthand without path",
			args: []string{"-n", "0"},
			expectedConfig: &app.Config{
				Size:         intPtr(0),
				OutputFormat: "text",
				LogLevel:     "warn",
				LogFormat:    "text",
			},
		},
		{
			name:           "Help flag triggers clean exit",
			args:           []string{"-h"},
			expectExit:     true,
			expectedOutput: "Usage:",
		},
		{
			name:           "No path or size prints usage",
			args:           []string{},
			expectExit:     true,
			expectedOutput: "spiralgrid [options] [GRID_PATH]",
		},
		{
			name:         "Unknown flag",
			args:         []string{"--bogus"},
			expectedCode: 2,
			expectedErr:  "flag provided but not defined: -bogus",
		},
		{
			name:         "Negative size",
			args:         []string{"-size", "-3"},
			expectedCode: 2,
			expectedErr:  "invalid grid size: size must not be negative, got -3",
		},
		{
			name:         "Size above the maximum",
			args:         []string{"-n", "4097"},
			expectedCode: 2,
			expectedErr:  "invalid grid size: size 4097 exceeds the maximum of 4096",
		},
		{
			name:         "Invalid output format",
			args:         []string{"-n", "2", "-format", "yaml"},
			expectedCode: 2,
			expectedErr:  `invalid output format "yaml": must be 'text' or 'json'`,
		},
		{
			name:         "Invalid log level",
			args:         []string{"-n", "2", "-log-level", "loud"},
			expectedCode: 2,
			expectedErr:  `invalid log level "loud": must be 'debug', 'info', 'warn', or 'error'`,
		},
		{
			name:         "Too many positional arguments",
			args:         []string{"a.hcl", "b.hcl"},
			expectedCode: 2,
			expectedErr:  "too many arguments: a.hcl b.hcl",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)

			if tc.expectedErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, tc.expectedCode, exitErr.Code)
				require.Equal(t, tc.expectedErr, exitErr.Message)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectExit {
				require.Nil(t, cfg)
				require.Contains(t, out.String(), tc.expectedOutput)
				return
			}
			if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
				t.Errorf("Parse() config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
