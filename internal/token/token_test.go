package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReasonString(t *testing.T) {
	tests := []struct {
		input    Reason
		expected string
	}{
		{NoReason, "none"},
		{UnclosedSection, "unclosed section"},
		{EmptySection, "empty section"},
		{TrailingText, "text after section"},
		{Reason(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.input.String())
		})
	}
}
