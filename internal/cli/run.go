package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/internal/shell"
	"github.com/vvka-141/vfsh/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run <script_path>",
	Short: "Execute shell commands from a script",
	Long: `Run executes commands from a script file through one in-memory session,
one command per line, and prints their output.

Arguments:
  script_path    Path to the script file, or "-" to read from stdin

Blank lines are skipped. By default a failing command prints its error and
the script continues, mirroring the interactive loop; with --strict the run
stops at the first failure and exits non-zero.

Examples:
  # Run a script
  vfsh run demo.vfsh

  # Pipe commands from stdin
  printf 'mkdir a\ncd a\npwd\n' | vfsh run -

  # Stop on the first error
  vfsh run demo.vfsh --strict`,
	Args: RequireScriptPath,
	RunE: runScript,
}

var runStrict bool

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runStrict, "strict", false,
		"Stop at the first failing command and exit non-zero")
}

func runScript(cmd *cobra.Command, args []string) error {
	in, closer, err := openScript(args[0])
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	log := logging.NewConsoleLogger(getVerboseFlag(cmd))
	session := shell.NewSession(log)
	return tui.RunLineLoop(session, in, cmd.OutOrStdout(), tui.LineLoopOptions{Strict: runStrict})
}

// openScript opens the script source; "-" selects stdin.
func openScript(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open script: %w", err)
	}
	return f, f.Close, nil
}
