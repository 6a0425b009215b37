package fstree

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// SplitPath breaks a textual path into its segments. Empty segments from
// consecutive or trailing separators are dropped, so "/a//b/" and "a/b"
// produce the same segment list. "." and ".." are preserved for the walker.
func SplitPath(path string) []string {
	parts := strings.Split(path, vfsh.Separator)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// SplitLast splits a path into its parent path and final segment.
//
//	"a/b/c"  → ("a/b", "c")
//	"/c"     → ("/", "c")
//	"c"      → ("", "c")
//
// An empty final segment (path ending in a separator, or the bare separator)
// is returned as "".
func SplitLast(path string) (parent, name string) {
	trimmed := strings.TrimRight(path, vfsh.Separator)
	if trimmed == "" {
		// "/" or "" — no final segment.
		if strings.HasPrefix(path, vfsh.Separator) {
			return vfsh.Separator, ""
		}
		return "", ""
	}

	idx := strings.LastIndex(trimmed, vfsh.Separator)
	if idx < 0 {
		return "", trimmed
	}
	if idx == 0 {
		return vfsh.Separator, trimmed[1:]
	}
	return trimmed[:idx], trimmed[idx+1:]
}

// Resolve walks path from cursor and returns the terminal node. An absolute
// path (leading separator) walks from the tree root instead. "." stays in
// place and ".." moves to the parent, with the root's parent resolving to the
// root itself.
//
// Resolution fails with vfsh.ErrNotFound at the first segment that names no
// child, and with vfsh.ErrNotADirectory when an intermediate segment names a
// file. The empty path resolves to cursor.
func Resolve(cursor *Node, path string) (*Node, error) {
	cur := cursor
	if strings.HasPrefix(path, vfsh.Separator) {
		cur = Root(cursor)
	}

	segments := SplitPath(path)
	for i, seg := range segments {
		if !cur.IsDir() {
			return nil, fmt.Errorf("%s: %w", cur.Path(), vfsh.ErrNotADirectory)
		}
		switch seg {
		case ".":
			continue
		case "..":
			if parent := cur.Parent(); parent != nil {
				cur = parent
			}
			continue
		}

		child, ok := cur.Child(seg)
		if !ok {
			return nil, fmt.Errorf("%s: %w", strings.Join(segments[:i+1], vfsh.Separator), vfsh.ErrNotFound)
		}
		cur = child
	}
	return cur, nil
}

// ResolveDir resolves path and requires the result to be a directory.
func ResolveDir(cursor *Node, path string) (*Node, error) {
	node, err := Resolve(cursor, path)
	if err != nil {
		return nil, err
	}
	if !node.IsDir() {
		return nil, fmt.Errorf("%s: %w", node.Path(), vfsh.ErrNotADirectory)
	}
	return node, nil
}

// ResolveFile resolves path and requires the result to be a file.
func ResolveFile(cursor *Node, path string) (*Node, error) {
	node, err := Resolve(cursor, path)
	if err != nil {
		return nil, err
	}
	if node.IsDir() {
		return nil, fmt.Errorf("%s: %w", node.Path(), vfsh.ErrNotAFile)
	}
	return node, nil
}

// Root follows parent back-references from n to the tree root.
func Root(n *Node) *Node {
	cur := n
	for cur.Parent() != nil {
		cur = cur.Parent()
	}
	return cur
}
