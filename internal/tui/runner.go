package tui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vvka-141/vfsh/internal/shell"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// ansiClear clears the display and homes the cursor on a plain terminal.
const ansiClear = "\033[2J\033[H"

// LineLoopOptions controls the non-interactive session loop.
type LineLoopOptions struct {
	// Strict stops the loop at the first failing command instead of
	// printing the error and continuing.
	Strict bool
}

// RunLineLoop drives a session from a plain line stream: one command per
// line, outputs and error lines written to out. Used for piped stdin and
// for script execution.
//
// Returns vfsh.ErrScriptFailed (wrapped) when Strict is set and a command
// fails; an exit command or end of input ends the loop normally.
func RunLineLoop(session *shell.Session, in io.Reader, out io.Writer, opts LineLoopOptions) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		res, err := session.Eval(line)
		if err != nil {
			fmt.Fprintln(out, err.Error())
			if opts.Strict {
				return fmt.Errorf("%q: %v: %w", line, err, vfsh.ErrScriptFailed)
			}
			continue
		}

		switch res.Signal {
		case shell.SignalClear:
			fmt.Fprint(out, ansiClear)
			continue
		case shell.SignalExit:
			return nil
		}

		if res.Output != "" {
			fmt.Fprintln(out, res.Output)
		}
	}
	return scanner.Err()
}
