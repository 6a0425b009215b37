package shell

import (
	"github.com/google/uuid"

	"github.com/vvka-141/vfsh/internal/fstree"
	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Signal asks the session's host loop for a terminal-level action that the
// engine itself cannot (and should not) perform.
type Signal int

const (
	// SignalNone requests nothing; the command completed normally.
	SignalNone Signal = iota
	// SignalClear requests that the host clear the display.
	SignalClear
	// SignalExit requests that the host stop the read loop.
	SignalExit
)

// Result is the outcome of evaluating one input line.
type Result struct {
	// Output is the formatted text block for query commands, without a
	// trailing newline. Mutating commands produce no output on success.
	Output string

	// Signal is the terminal-level action requested by the command.
	Signal Signal
}

// Session is one running shell over one virtual tree. The session holds the
// only mutable references to the tree root and to the current-directory
// cursor; the cursor starts at the root and is rewritten only by cd (and by
// rm when the directory under the cursor is removed).
//
// A Session is not safe for concurrent use; it processes one command to
// completion before accepting the next.
type Session struct {
	id   uuid.UUID
	root *fstree.Node
	cwd  *fstree.Node
	log  vfsh.Logger
}

// NewSession creates a session with a fresh single-root tree and the cursor
// at the root. A nil logger is replaced with a no-op logger.
func NewSession(log vfsh.Logger) *Session {
	if log == nil {
		log = logging.NewNullLogger()
	}
	root := fstree.NewRoot()
	s := &Session{
		id:   uuid.New(),
		root: root,
		cwd:  root,
		log:  log,
	}
	s.log.Verbose("session %s started", s.id)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Root returns the tree root.
func (s *Session) Root() *fstree.Node { return s.root }

// WorkingDir returns the directory the cursor points at.
func (s *Session) WorkingDir() *fstree.Node { return s.cwd }

// Eval evaluates one input line and returns its result. A blank line is a
// no-op. The command token is lowercased before dispatch; an unmatched token
// fails with vfsh.ErrUnknownCommand. Errors never terminate the session and
// never leave a partial mutation behind.
func (s *Session) Eval(line string) (Result, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Result{}, nil
	}

	name := CanonicalCommand(tokens[0])
	args := tokens[1:]
	s.log.Verbose("session %s: dispatch %q args=%v", s.id, name, args)

	cmd, ok := commands[name]
	if !ok {
		return Result{}, unknownCommand(name)
	}

	res, err := cmd.run(s, args)
	if err != nil {
		s.log.Verbose("session %s: %q failed: %v", s.id, name, err)
		return Result{}, err
	}
	if len(res.Output) > 0 {
		s.log.Verbose("session %s: %q output %q", s.id, name, preview(res.Output))
	}
	return res, nil
}

// preview truncates command output for verbose log lines.
func preview(out string) string {
	if len(out) <= vfsh.MaxOutputPreviewLength {
		return out
	}
	return out[:vfsh.MaxOutputPreviewLength] + "..."
}
