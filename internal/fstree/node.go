package fstree

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Kind distinguishes the two node variants. Every tree operation that cares
// about the distinction switches on it, so new variants would surface as
// compile-visible gaps rather than silent fallthroughs.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// String returns a short human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a single entry in the virtual tree: either a directory that owns
// children, or a file that owns a content buffer.
//
// Ownership flows exclusively from a directory to its children via the child
// map; the parent pointer is a non-owning back-reference that is nil only for
// the root and for detached (removed) nodes.
type Node struct {
	name     string
	kind     Kind
	parent   *Node
	children map[string]*Node
	order    []string // child names in insertion order
	content  []byte   // files only
}

// NewRoot creates the root directory of a new tree. The root has an empty
// name and no parent; it renders as the bare separator.
func NewRoot() *Node {
	return &Node{
		kind:     KindDirectory,
		children: make(map[string]*Node),
	}
}

// ValidateName reports whether name is usable as a node name: non-empty and
// free of path separators.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", vfsh.ErrInvalidName)
	}
	if strings.Contains(name, vfsh.Separator) {
		return fmt.Errorf("%q contains %q: %w", name, vfsh.Separator, vfsh.ErrInvalidName)
	}
	return nil
}

// Name returns the node's name. The root's name is empty.
func (n *Node) Name() string { return n.name }

// Kind returns the node variant.
func (n *Node) Kind() Kind { return n.kind }

// IsDir reports whether the node is a directory.
func (n *Node) IsDir() bool { return n.kind == KindDirectory }

// IsRoot reports whether the node is the tree root.
func (n *Node) IsRoot() bool { return n.parent == nil && n.name == "" }

// Parent returns the node's parent directory. The root (and a detached node)
// returns nil; path resolution treats the root's parent as the root itself.
func (n *Node) Parent() *Node { return n.parent }

// Child returns the named immediate child, if present.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Children returns the immediate children in insertion order. An empty
// directory (or a file) yields an empty slice.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// Mkdir creates a new directory as a child of n. Directories and files share
// one namespace per directory, so any existing sibling with the same name is
// a conflict.
func (n *Node) Mkdir(name string) (*Node, error) {
	return n.addChild(name, KindDirectory)
}

// CreateFile creates a new empty file as a child of n. Same naming and
// conflict rules as Mkdir.
func (n *Node) CreateFile(name string) (*Node, error) {
	return n.addChild(name, KindFile)
}

func (n *Node) addChild(name string, kind Kind) (*Node, error) {
	if !n.IsDir() {
		return nil, fmt.Errorf("%s: %w", n.Path(), vfsh.ErrNotADirectory)
	}
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if name == "." || name == ".." {
		return nil, fmt.Errorf("%q is reserved: %w", name, vfsh.ErrInvalidName)
	}
	if _, exists := n.children[name]; exists {
		return nil, fmt.Errorf("%s: %w", name, vfsh.ErrAlreadyExists)
	}

	child := &Node{
		name:   name,
		kind:   kind,
		parent: n,
	}
	if kind == KindDirectory {
		child.children = make(map[string]*Node)
	}

	n.children[name] = child
	n.order = append(n.order, name)
	return child, nil
}

// Remove detaches n from its parent, discarding the whole subtree when n is
// a directory. Removing the root is forbidden. After removal the node is
// detached: its parent pointer is nil and it is no longer reachable from the
// tree.
func (n *Node) Remove() error {
	if n.IsRoot() {
		return vfsh.ErrRootRemoval
	}
	parent := n.parent
	if parent == nil {
		// Already detached.
		return fmt.Errorf("%s: %w", n.name, vfsh.ErrNotFound)
	}

	delete(parent.children, n.name)
	for i, name := range parent.order {
		if name == n.name {
			parent.order = append(parent.order[:i], parent.order[i+1:]...)
			break
		}
	}
	n.parent = nil
	return nil
}

// Path renders the absolute path from the root to n, segments joined by the
// separator. The root renders as the bare separator.
func (n *Node) Path() string {
	if n.IsRoot() {
		return vfsh.Separator
	}

	var segments []string
	for cur := n; cur != nil && !cur.IsRoot(); cur = cur.parent {
		segments = append(segments, cur.name)
	}
	// Collected leaf-first; reverse into root-first order.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return vfsh.Separator + strings.Join(segments, vfsh.Separator)
}

// Content returns the file's content. Directories have no content and
// return the empty string.
func (n *Node) Content() string { return string(n.content) }

// SetContent replaces the file's content.
func (n *Node) SetContent(text string) { n.content = []byte(text) }

// AppendContent appends text to the file's content.
func (n *Node) AppendContent(text string) { n.content = append(n.content, text...) }
