package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// journalIDRegex matches valid journal identifiers: a letter or digit followed
// by letters, digits, dots, underscores, or hyphens.
var journalIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateJournalID validates a journal identifier for safety and correctness.
// Identifiers name managed style files on disk, so the rules are intentionally
// conservative:
//   - No empty identifiers
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateJournalID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidConfig, "journal identifier cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidConfig, "journal identifier too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "journal identifier contains control characters")
		}
	}

	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidConfig, "journal identifier cannot contain path separators: %q", id)
	}

	if !journalIDRegex.MatchString(id) {
		return New(ErrCodeInvalidConfig, "invalid journal identifier: %q", id)
	}

	return nil
}
