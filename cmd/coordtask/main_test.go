package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/matzehuels/coordtask/pkg/coords"
	"github.com/matzehuels/coordtask/pkg/errors"
)

func TestExitCode(t *testing.T) {
	_, coordErr := coords.ParseDependency("g:a")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "task file wrapping coordinate",
			err:  errors.Wrap(errors.ErrCodeInvalidTaskFile, coordErr, "dependency[0].coords"),
			want: exitConfigError,
		},
		{
			name: "coordinate",
			err:  coordErr,
			want: exitConfigError,
		},
		{
			name: "variant",
			err:  errors.New(errors.ErrCodeInvalidVariant, "unknown variant"),
			want: exitConfigError,
		},
		{
			name: "path",
			err:  errors.New(errors.ErrCodeInvalidPath, "bad path"),
			want: exitConfigError,
		},
		{
			name: "missing file",
			err:  errors.Wrap(errors.ErrCodeFileNotFound, fmt.Errorf("no such file"), "task file build.toml"),
			want: exitConfigError,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: exitFailure,
		},
		{
			name: "internal",
			err:  errors.New(errors.ErrCodeInternal, "unexpected"),
			want: exitFailure,
		},
		{
			name: "cancelled",
			err:  context.Canceled,
			want: exitInterrupted,
		},
		{
			name: "wrapped cancel",
			err:  fmt.Errorf("serve: %w", context.Canceled),
			want: exitInterrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
