package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWord prepares user input for a lookup:
//   - trims leading/trailing whitespace
//   - applies Unicode NFC so composed and decomposed input build the same URL
//
// Case and inner spacing are preserved; Chinese has no case and the
// dictionary treats inner spaces as part of the query.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return norm.NFC.String(word)
}
