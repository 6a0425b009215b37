package vfsh_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, vfsh.ExitSuccess},
		{"general error", errors.New("something went wrong"), vfsh.ExitGeneralError},
		{"invalid config", vfsh.ErrInvalidConfig, vfsh.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("vfsh.yaml: %w", vfsh.ErrInvalidConfig), vfsh.ExitConfigError},
		{"script failed", vfsh.ErrScriptFailed, vfsh.ExitScriptFailed},
		{"malformed arguments", vfsh.ErrMalformedArguments, vfsh.ExitUsageError},
		{"unknown command", vfsh.ErrUnknownCommand, vfsh.ExitUsageError},
		{"unknown flag", errors.New("unknown flag --foo"), vfsh.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), vfsh.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), vfsh.ExitUsageError},
		{"missing required argument", errors.New("missing required argument: <script_path>"), vfsh.ExitUsageError},
		{"tree error is general", vfsh.ErrNotFound, vfsh.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vfsh.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		vfsh.ErrInvalidName,
		vfsh.ErrAlreadyExists,
		vfsh.ErrNotFound,
		vfsh.ErrNotADirectory,
		vfsh.ErrNotAFile,
		vfsh.ErrRootRemoval,
		vfsh.ErrUnknownCommand,
		vfsh.ErrMalformedArguments,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}
