package strutil

import "strings"

// EscapeMultiline folds a multiline value onto a single line. Backslashes are
// doubled first so escaped newlines stay reversible.
func EscapeMultiline(text string) string {
	escaped := strings.ReplaceAll(text, `\`, `\\`)
	return strings.ReplaceAll(escaped, "\n", `\n`)
}
