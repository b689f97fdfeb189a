package errors

import (
	"strings"
	"testing"
)

func TestValidateJournalID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "aanda", false},
		{"valid with dash", "my-journal", false},
		{"valid with underscore", "my_journal", false},
		{"valid with dot", "aa.letters", false},
		{"valid with digits", "prd2026", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"leading dot", ".hidden", true},
		{"path traversal", "foo/../bar", true},
		{"slash", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"space", "foo bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJournalID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateJournalID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidConfig) {
				t.Errorf("ValidateJournalID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidConfig)
			}
		})
	}
}
