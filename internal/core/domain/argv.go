package domain

import (
	"strings"
	"unicode"
)

// EscapeArg quotes a single argument for a command line.
// Arguments containing whitespace are wrapped in double quotes with embedded quotes
// backslash-escaped. Any other argument is returned unchanged, including the empty string.
func EscapeArg(arg string) string {
	if !strings.ContainsFunc(arg, unicode.IsSpace) {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// EscapeAndJoin escapes every argument and joins them with a single space.
func EscapeAndJoin(args []string) string {
	escaped := make([]string, len(args))
	for i, arg := range args {
		escaped[i] = EscapeArg(arg)
	}
	return strings.Join(escaped, " ")
}
