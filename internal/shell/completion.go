package shell

import (
	"sort"
	"strings"

	"github.com/vvka-141/vfsh/internal/fstree"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Completer provides tab-completion and cycling for input lines. The first
// token completes against command names, later tokens against the virtual
// tree. It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	completer := NewCompleter(session)
//
//	// On Tab press:
//	completed := completer.Next(input.Value())
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type Completer struct {
	session    *Session
	matches    []string
	cycleIndex int
	lastHead   string
	lastParent string
}

// NewCompleter creates a completer over the given session's tree.
func NewCompleter(session *Session) *Completer {
	return &Completer{session: session}
}

// Next returns the next completion for the given input line. On first call
// (or after the input changes), it computes matches; on subsequent calls with
// the same base input it cycles through them.
func (c *Completer) Next(input string) string {
	head, word := splitLastToken(input)
	parent, prefix := splitVirtualPath(word)

	// If the input changed from what we're cycling through, recompute.
	if head != c.lastHead || parent != c.lastParent || c.matches == nil {
		if head == "" {
			c.matches = matchCommands(prefix)
		} else {
			c.matches = c.findTreeMatches(parent, prefix)
		}
		c.cycleIndex = 0
		c.lastHead = head
		c.lastParent = parent

		if len(c.matches) == 0 {
			return input
		}

		// First Tab: if there's a unique common prefix longer than the
		// current word, complete it without cycling.
		if len(c.matches) > 1 {
			common := longestCommonPrefix(c.matches)
			candidate := head + joinVirtualPath(parent, common)
			if len(candidate) > len(input) {
				return candidate
			}
		}

		return head + c.formatMatch(parent, c.matches[c.cycleIndex])
	}

	// Same base input — cycle to the next match.
	if len(c.matches) == 0 {
		return input
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return head + c.formatMatch(parent, c.matches[c.cycleIndex])
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *Completer) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastHead = ""
	c.lastParent = ""
}

func matchCommands(prefix string) []string {
	var matches []string
	for _, name := range CommandNames() {
		if strings.HasPrefix(name, strings.ToLower(prefix)) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}

func (c *Completer) findTreeMatches(parent, prefix string) []string {
	dir, err := fstree.ResolveDir(c.session.WorkingDir(), parent)
	if err != nil {
		return nil
	}

	var matches []string
	lowPrefix := strings.ToLower(prefix)
	for _, child := range dir.Children() {
		if strings.HasPrefix(strings.ToLower(child.Name()), lowPrefix) {
			matches = append(matches, child.Name())
		}
	}
	sort.Strings(matches)
	return matches
}

func (c *Completer) formatMatch(parent, name string) string {
	result := joinVirtualPath(parent, name)

	// A directory match gets a trailing separator so the next Tab descends.
	if node, err := fstree.Resolve(c.session.WorkingDir(), result); err == nil && node.IsDir() {
		result += vfsh.Separator
	}
	return result
}

// splitLastToken splits an input line into everything up to the last token
// (including the trailing space) and the last token itself. A line ending in
// whitespace has an empty last token.
func splitLastToken(input string) (head, word string) {
	idx := strings.LastIndexAny(input, " \t")
	if idx < 0 {
		return "", input
	}
	return input[:idx+1], input[idx+1:]
}

// splitVirtualPath splits a path token into its parent directory part and
// name prefix.
//
//	"a/b/co" → ("a/b", "co")
//	"/co"    → ("/", "co")
//	"a/"     → ("a", "")
//	"co"     → ("", "co")
func splitVirtualPath(word string) (parent, prefix string) {
	if strings.HasSuffix(word, vfsh.Separator) {
		trimmed := strings.TrimRight(word, vfsh.Separator)
		if trimmed == "" {
			return vfsh.Separator, ""
		}
		return trimmed, ""
	}
	return fstree.SplitLast(word)
}

// joinVirtualPath joins a parent path and a child name back into a token.
func joinVirtualPath(parent, name string) string {
	switch parent {
	case "":
		return name
	case vfsh.Separator:
		return vfsh.Separator + name
	default:
		return parent + vfsh.Separator + name
	}
}

// longestCommonPrefix finds the longest common prefix among strings
// (case-insensitive, returning the casing of the first match).
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	lowered := make([]string, len(strs))
	for i, s := range strs {
		lowered[i] = strings.ToLower(s)
	}

	first := lowered[0]
	rest := lowered[1:]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range rest {
			if i >= len(s) || s[i] != ch {
				return strs[0][:i]
			}
		}
	}
	return strs[0]
}
