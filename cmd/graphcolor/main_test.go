package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/matzehuels/graphcolor/pkg/coloring"
	apperrors "github.com/matzehuels/graphcolor/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"canceled", fmt.Errorf("color: %w", context.Canceled), exitCanceled},
		{"no coloring", coloring.ErrNoColoring, exitNoColoring},
		{"arguments", apperrors.New(apperrors.ErrCodeInvalidArguments, "--output-file is required"), 1},
		{"plain", fmt.Errorf("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
