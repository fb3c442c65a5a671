package utils

import (
	"regexp"
	"strings"
)

var digitsRe = regexp.MustCompile(`\d+`)

// DigitsOnly extracts the digits from a free-text room reference, so
// "RM-105" becomes "105".
func DigitsOnly(text string) string {
	return strings.Join(digitsRe.FindAllString(text, -1), "")
}

var roomPrefixes = []string{"RM-", "RM ", "Quarto", "QUARTO"}

// CleanRoomLabel strips the prefixes room names accumulated over time
// ("RM-105", "Quarto 110") down to the bare number.
func CleanRoomLabel(name string) string {
	out := name
	for _, p := range roomPrefixes {
		out = strings.ReplaceAll(out, p, "")
	}
	return strings.TrimSpace(out)
}
