package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	nonDigitRegex   = regexp.MustCompile(`[^0-9]`)
	controlRegex    = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// Fold returns the Unicode case-folded form of s
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr matches nothing.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(Fold(s), Fold(substr))
}

// DigitsOnly strips everything but ASCII digits
func DigitsOnly(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	// Convert string to runes to handle Unicode characters properly
	runes := []rune(s)

	if len(runes) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return "..."
	}

	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString removes control characters and collapses whitespace
func SanitizeString(s string) string {
	result := controlRegex.ReplaceAllString(s, " ")
	result = multiSpaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
