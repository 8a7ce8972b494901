package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractOrderNumber(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"my order DM24210432 arrived", "DM24210432"},
		{"dm24210432 is too tight", "DM24210432"},
		{"order Dm2421043212 please", "DM2421043212"},
		{"no order here", ""},
		{"DM123 is too short", ""},
		{"two orders DM24210432 and DM24165432", "DM24210432"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractOrderNumber(tt.text), "text %q", tt.text)
	}
}

func TestValidOrderNumber(t *testing.T) {
	assert.True(t, ValidOrderNumber("DM24210432"))
	assert.True(t, ValidOrderNumber(" dm1234567 "))
	assert.False(t, ValidOrderNumber("DM123"))
	assert.False(t, ValidOrderNumber("order DM24210432"))
	assert.False(t, ValidOrderNumber(""))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("he\x00llo"))
	assert.Equal(t, "café", SanitizeString("café"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", TruncateString("abcdef", 3))
	assert.Equal(t, "abc", TruncateString("abc", 10))
}
