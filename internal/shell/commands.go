package shell

import (
	"fmt"
	"strings"

	"github.com/vvka-141/vfsh/internal/fstree"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// command is one dispatch table entry.
type command struct {
	usage string // argument grammar shown by help
	short string // one-line description shown by help
	run   func(s *Session, args []string) (Result, error)
}

// commands maps the lowercased command token to its entry. commandOrder
// fixes the listing order for help and completion.
var commands map[string]command

var commandOrder = []string{
	"mkdir", "touch", "ls", "cd", "pwd", "echo", "cat", "rm", "clear", "help", "exit",
}

func init() {
	commands = map[string]command{
		"mkdir": {"mkdir <path>", "create a directory", (*Session).cmdMkdir},
		"touch": {"touch <path>", "create an empty file", (*Session).cmdTouch},
		"ls":    {"ls [path]", "list directory contents", (*Session).cmdLs},
		"cd":    {"cd <path>", "change the current directory", (*Session).cmdCd},
		"pwd":   {"pwd", "print the current directory", (*Session).cmdPwd},
		"echo":  {"echo <text> [> <path> | >> <path>]", "print text or write it to a file", (*Session).cmdEcho},
		"cat":   {"cat <path>", "print a file's content", (*Session).cmdCat},
		"rm":    {"rm <path>", "remove a file or directory tree", (*Session).cmdRm},
		"clear": {"clear", "clear the screen", (*Session).cmdClear},
		"help":  {"help", "show this command list", (*Session).cmdHelp},
		"exit":  {"exit", "leave the shell", (*Session).cmdExit},
	}
}

// CommandNames returns the command tokens in listing order.
func CommandNames() []string {
	names := make([]string, len(commandOrder))
	copy(names, commandOrder)
	return names
}

func unknownCommand(name string) error {
	return fmt.Errorf("%q (available: %s): %w",
		name, strings.Join(commandOrder, ", "), vfsh.ErrUnknownCommand)
}

func usageError(name string) error {
	return fmt.Errorf("usage: %s: %w", commands[name].usage, vfsh.ErrMalformedArguments)
}

func (s *Session) cmdMkdir(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("mkdir")
	}
	parent, name, err := s.resolveParent(args[0])
	if err != nil {
		return Result{}, fmt.Errorf("mkdir: %w", err)
	}
	if _, err := parent.Mkdir(name); err != nil {
		return Result{}, fmt.Errorf("mkdir: %w", err)
	}
	return Result{}, nil
}

func (s *Session) cmdTouch(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("touch")
	}
	parent, name, err := s.resolveParent(args[0])
	if err != nil {
		return Result{}, fmt.Errorf("touch: %w", err)
	}
	if existing, ok := parent.Child(name); ok {
		if existing.IsDir() {
			return Result{}, fmt.Errorf("touch: %s is a directory: %w", name, vfsh.ErrAlreadyExists)
		}
		// Re-touching an existing file is a no-op.
		return Result{}, nil
	}
	if _, err := parent.CreateFile(name); err != nil {
		return Result{}, fmt.Errorf("touch: %w", err)
	}
	return Result{}, nil
}

func (s *Session) cmdLs(args []string) (Result, error) {
	if len(args) > 1 {
		return Result{}, usageError("ls")
	}
	target := s.cwd
	if len(args) == 1 {
		dir, err := fstree.ResolveDir(s.cwd, args[0])
		if err != nil {
			return Result{}, fmt.Errorf("ls: %w", err)
		}
		target = dir
	}
	return Result{Output: FormatListing(target)}, nil
}

func (s *Session) cmdCd(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("cd")
	}
	dir, err := fstree.ResolveDir(s.cwd, args[0])
	if err != nil {
		return Result{}, fmt.Errorf("cd: %w", err)
	}
	s.cwd = dir
	return Result{}, nil
}

func (s *Session) cmdPwd(args []string) (Result, error) {
	if len(args) != 0 {
		return Result{}, usageError("pwd")
	}
	return Result{Output: s.cwd.Path()}, nil
}

func (s *Session) cmdEcho(args []string) (Result, error) {
	text, mode, target, err := ParseRedirect(args)
	if err != nil {
		return Result{}, fmt.Errorf("echo: %w", err)
	}
	if mode == RedirectNone {
		return Result{Output: text}, nil
	}

	parent, name, err := s.resolveParent(target)
	if err != nil {
		return Result{}, fmt.Errorf("echo: %w", err)
	}

	file, ok := parent.Child(name)
	if ok {
		if file.IsDir() {
			return Result{}, fmt.Errorf("echo: %s: %w", file.Path(), vfsh.ErrNotAFile)
		}
	} else {
		// Redirecting to a missing path creates the file first.
		if file, err = parent.CreateFile(name); err != nil {
			return Result{}, fmt.Errorf("echo: %w", err)
		}
	}

	if mode == RedirectAppend {
		file.AppendContent(text)
	} else {
		file.SetContent(text)
	}
	return Result{}, nil
}

func (s *Session) cmdCat(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("cat")
	}
	file, err := fstree.ResolveFile(s.cwd, args[0])
	if err != nil {
		return Result{}, fmt.Errorf("cat: %w", err)
	}
	return Result{Output: file.Content()}, nil
}

func (s *Session) cmdRm(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usageError("rm")
	}
	node, err := fstree.Resolve(s.cwd, args[0])
	if err != nil {
		return Result{}, fmt.Errorf("rm: %w", err)
	}

	// Removing the directory under the cursor (or one of its ancestors)
	// would leave the cursor dangling; relocate it to the removed node's
	// parent first.
	relocate := s.cwd == node || isAncestor(node, s.cwd)
	parent := node.Parent()

	if err := node.Remove(); err != nil {
		return Result{}, fmt.Errorf("rm: %w", err)
	}
	if relocate {
		s.cwd = parent
	}
	return Result{}, nil
}

func (s *Session) cmdClear(args []string) (Result, error) {
	if len(args) != 0 {
		return Result{}, usageError("clear")
	}
	return Result{Signal: SignalClear}, nil
}

func (s *Session) cmdExit(args []string) (Result, error) {
	if len(args) != 0 {
		return Result{}, usageError("exit")
	}
	s.log.Verbose("session %s: exit requested", s.id)
	return Result{Signal: SignalExit}, nil
}

func (s *Session) cmdHelp(args []string) (Result, error) {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, name := range commandOrder {
		cmd := commands[name]
		b.WriteString(fmt.Sprintf("\n  %-36s %s", cmd.usage, cmd.short))
	}
	return Result{Output: b.String()}, nil
}

// resolveParent resolves everything but the final segment of path against
// the cursor and returns the containing directory plus the final segment.
func (s *Session) resolveParent(path string) (*fstree.Node, string, error) {
	parentPath, name := fstree.SplitLast(path)
	if name == "" {
		return nil, "", fmt.Errorf("%q has no final segment: %w", path, vfsh.ErrInvalidName)
	}
	parent, err := fstree.ResolveDir(s.cwd, parentPath)
	if err != nil {
		return nil, "", err
	}
	return parent, name, nil
}

// isAncestor reports whether node is an ancestor of other.
func isAncestor(node, other *fstree.Node) bool {
	for cur := other.Parent(); cur != nil; cur = cur.Parent() {
		if cur == node {
			return true
		}
	}
	return false
}

// FormatListing renders a directory's immediate children in insertion order,
// one name per line, marking directories with a trailing separator. An empty
// directory renders as an empty string.
func FormatListing(dir *fstree.Node) string {
	children := dir.Children()
	names := make([]string, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if child.IsDir() {
			name += vfsh.Separator
		}
		names = append(names, name)
	}
	return strings.Join(names, "\n")
}
