// Package envexpr expands ${env.KEY} references in configuration text.
package envexpr

import (
	"os"
	"strings"
	"unicode"
)

const prefix = "${env."

// LookupFunc resolves an environment variable; tests may replace it.
var LookupFunc = os.Getenv

// Expand replaces every ${env.KEY} with the value of KEY, or an empty string
// when unset. KEY is letters, digits or '_'; any other reference is kept
// literally. An unterminated reference leaves the remainder untouched.
func Expand(text string) string {
	if !strings.Contains(text, prefix) {
		return text
	}
	var out strings.Builder
	for {
		start := strings.Index(text, prefix)
		if start < 0 {
			out.WriteString(text)
			return out.String()
		}
		out.WriteString(text[:start])
		rest := text[start+len(prefix):]
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			out.WriteString(text[start:])
			return out.String()
		}
		key := rest[:end]
		if !isKey(key) {
			out.WriteString(prefix)
			text = rest
			continue
		}
		out.WriteString(LookupFunc(key))
		text = rest[end+1:]
	}
}

func isKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
