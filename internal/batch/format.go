package batch

import (
	"strings"

	"github.com/heartmarshall/daumdict/internal/domain"
)

// formatResult renders one results-file line: "word, pinyin, ['m1', 'm2']".
func formatResult(res domain.LookupResult) string {
	return res.Word + ", " + res.Pinyin + ", " + formatMeanings(res.Meanings) + "\n"
}

// formatError renders one error-log line: "word - Error: message".
func formatError(word, msg string) string {
	return word + " - Error: " + msg + "\n"
}

// formatMeanings renders meanings as a bracketed list of quoted strings,
// the layout existing result files use.
func formatMeanings(meanings []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, m := range meanings {
		if i > 0 {
			b.WriteString(", ")
		}
		writeQuoted(&b, m)
	}
	b.WriteByte(']')
	return b.String()
}

// writeQuoted single-quotes s, switching to double quotes when s contains a
// single quote but no double quote.
func writeQuoted(b *strings.Builder, s string) {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
}
