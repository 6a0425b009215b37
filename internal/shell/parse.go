package shell

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Tokenize splits an input line into whitespace-delimited tokens. Quoting
// and escaping are not supported.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// CanonicalCommand normalizes a command token for dispatch.
func CanonicalCommand(token string) string {
	return strings.ToLower(token)
}

// RedirectMode is the output redirection requested by an echo command.
type RedirectMode int

const (
	// RedirectNone means no redirection; echo prints its text.
	RedirectNone RedirectMode = iota
	// RedirectReplace replaces the target file's content (">").
	RedirectReplace
	// RedirectAppend appends to the target file's content (">>").
	RedirectAppend
)

const (
	tokenRedirectReplace = ">"
	tokenRedirectAppend  = ">>"
)

// ParseRedirect splits echo arguments into the text, the redirect mode, and
// the target path. With no redirect token the whole argument list is text.
// A redirect token must be followed by exactly one target path.
func ParseRedirect(args []string) (text string, mode RedirectMode, target string, err error) {
	idx := -1
	for i, arg := range args {
		switch arg {
		case tokenRedirectReplace:
			idx, mode = i, RedirectReplace
		case tokenRedirectAppend:
			idx, mode = i, RedirectAppend
		}
		if idx >= 0 {
			break
		}
	}

	if idx < 0 {
		return strings.Join(args, " "), RedirectNone, "", nil
	}
	if len(args) != idx+2 {
		return "", RedirectNone, "", fmt.Errorf(
			"expected exactly one path after %q: %w", args[idx], vfsh.ErrMalformedArguments)
	}
	return strings.Join(args[:idx], " "), mode, args[idx+1], nil
}
