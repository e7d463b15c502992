package errors

import (
	"strings"
	"unicode"
)

// maxTargetLength bounds render target identifiers. Targets become file
// names, Redis keys and Mongo document ids, so they stay short.
const maxTargetLength = 128

// ValidateTarget validates a render target identifier.
//
// Targets are opaque names owned by the surrounding view, but backends use
// them as storage keys, so the rules reject anything that could escape a
// directory or collide with key separators:
//   - No empty names
//   - Maximum length of 128 characters
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - No whitespace
func ValidateTarget(target string) error {
	if target == "" {
		return New(ErrCodeInvalidTarget, "render target cannot be empty")
	}

	if len(target) > maxTargetLength {
		return New(ErrCodeInvalidTarget, "render target too long (max %d characters)", maxTargetLength)
	}

	for _, r := range target {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTarget, "render target contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidTarget, "render target cannot contain whitespace")
		}
	}

	dangerousPatterns := []string{
		"..", // Parent directory
		"/",  // Path separator
		"\\", // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(target, pattern) {
			return New(ErrCodeInvalidTarget, "render target contains invalid characters: %q", pattern)
		}
	}

	if strings.HasPrefix(target, ".") {
		return New(ErrCodeInvalidTarget, "render target cannot start with a dot")
	}

	return nil
}

// ValidateURL validates a connection URL for a storage backend.
// Only the schemes the backends understand are accepted.
func ValidateURL(rawURL string, schemes ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	for _, s := range schemes {
		if strings.HasPrefix(rawURL, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "URL must use one of the schemes: %s", strings.Join(schemes, ", "))
}
