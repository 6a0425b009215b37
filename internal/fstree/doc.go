// Package fstree implements the in-memory directory tree behind a vfsh
// session.
//
// The tree is a hierarchy of nodes, each either a directory or a file.
// Directories own their children through a name-keyed map with recorded
// insertion order; every non-root node keeps a non-owning back-reference to
// its parent, used only for path rendering and ".." resolution.
//
// Key types and operations:
//   - Node: a directory or file in the tree
//   - NewRoot: creates the unique ancestor-less root directory
//   - Resolve: translates a textual path into a concrete node
//   - Mkdir / CreateFile: insert fresh children
//   - Remove: detaches a node and discards its subtree
//
// The package has no knowledge of shell commands; command dispatch lives in
// the shell package.
package fstree
