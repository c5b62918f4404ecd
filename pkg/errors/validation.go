package errors

import (
	"strings"
	"unicode"
)

// ValidateGenerationParams checks the preconditions of random graph
// generation: at least one node and a non-negative degree cap.
func ValidateGenerationParams(size, maxDegree int) error {
	if size <= 0 {
		return New(ErrCodeInvalidInput, "size must be greater than 0, got %d", size)
	}
	if maxDegree < 0 {
		return New(ErrCodeInvalidInput, "max degree must be non-negative, got %d", maxDegree)
	}
	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (no trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory: %q", path)
	}

	return nil
}
