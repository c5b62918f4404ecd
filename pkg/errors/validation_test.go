package errors

import (
	"strings"
	"testing"
)

func TestValidateGenerationParams(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		maxDegree int
		wantErr   bool
	}{
		{"minimal", 1, 0, false},
		{"typical", 30000, 10, false},
		{"degree above size", 3, 10, false},

		{"zero size", 0, 3, true},
		{"negative size", -5, 3, true},
		{"negative degree", 10, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGenerationParams(tt.size, tt.maxDegree)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGenerationParams(%d, %d) error = %v, wantErr %v", tt.size, tt.maxDegree, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateGenerationParams returned wrong error code: %v", err)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "graph.json", false},
		{"nested", "out/colored_graph.json", false},
		{"absolute", "/tmp/graph.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}
