package http

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input validation constants
const (
	MaxMessageLength = 4000
	MaxReasonLength  = 1000
)

// orderNumberPattern matches an order id anywhere in free text: "DM"
// followed by 7-10 digits, case-insensitive.
var orderNumberPattern = regexp.MustCompile(`(?i)DM\d{7,10}`)

// exactOrderNumber matches a full order id and nothing else.
var exactOrderNumber = regexp.MustCompile(`(?i)^DM\d{7,10}$`)

// ExtractOrderNumber returns the first order id found in text, uppercased,
// or "" when none is present.
func ExtractOrderNumber(text string) string {
	match := orderNumberPattern.FindString(text)
	return strings.ToUpper(match)
}

// ValidOrderNumber checks a standalone order id.
func ValidOrderNumber(s string) bool {
	return exactOrderNumber.MatchString(strings.TrimSpace(s))
}

// SanitizeString removes null bytes and invalid UTF-8 sequences.
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	if !utf8.ValidString(s) {
		v := make([]rune, 0, len(s))
		for _, r := range s {
			if r != utf8.RuneError {
				v = append(v, r)
			}
		}
		s = string(v)
	}
	return s
}

// TruncateString safely truncates a string to max length.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
