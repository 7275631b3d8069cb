//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 3: expected '='"),
			expected: "Failed to load configuration: toml: line 3: expected '='",
		},
		{
			name:     "state operation",
			op:       OpStateOpen,
			err:      errors.New("database is locked"),
			expected: "Failed to open panel state: database is locked",
		},
		{
			name:     "size save operation",
			op:       OpSizeSave,
			err:      errors.New("disk full"),
			expected: "Failed to save panel sizes: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSizeLoad,
			context:  "sidebar",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpSizeLoad,
			context:  "sidebar",
			err:      errors.New("not a number"),
			expected: "Failed to load panel size 'sidebar': not a number",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpLogOpen,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to open log file: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
