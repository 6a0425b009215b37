package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/config"
	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/internal/shell"
	"github.com/vvka-141/vfsh/internal/tui"
)

const asciiLogo = `        __      _
 __   _/ _|___ | |__
 \ \ / / |_/ __| '_ \
  \ V /|  _\__ \ | | |
   \_/ |_| |___/_| |_|`

var rootCmd = &cobra.Command{
	Use:   "vfsh",
	Short: "In-memory virtual filesystem shell",
	Long: asciiLogo + `

vfsh simulates a hierarchical filesystem entirely in memory and exposes it
through shell-like commands: mkdir, touch, ls, cd, pwd, echo, cat, rm,
clear, help, exit.

Nothing touches the real filesystem; the tree lives for one session and is
discarded on exit. Run vfsh on a terminal for the interactive shell with
tab completion and history, or pipe commands in for scripted use.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Scripted command failed (run --strict)`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

type rootFlagValues struct {
	prompt  string
	noColor bool
}

var rootFlags rootFlagValues

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.Flags().StringVar(&rootFlags.prompt, "prompt", "",
		"Prompt string for the interactive shell\n"+
			"Precedence: --prompt > $VFSH_PROMPT > vfsh.yaml > \"$\"")
	rootCmd.Flags().BoolVar(&rootFlags.noColor, "no-color", false,
		"Disable styled output (also triggered by $NO_COLOR)")
}

func runShell(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q; commands are entered at the shell prompt", args[0])
	}

	log := logging.NewConsoleLogger(getVerboseFlag(cmd))
	cfg, err := loadShellConfig()
	if err != nil {
		return err
	}

	session := shell.NewSession(log)
	if tui.IsInteractive() {
		return tui.Run(session, cfg)
	}
	return tui.RunLineLoop(session, os.Stdin, os.Stdout, tui.LineLoopOptions{})
}

// loadShellConfig loads godotenv, vfsh.yaml, environment overrides, and
// finally CLI flags, in increasing precedence.
func loadShellConfig() (*config.ShellConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, err
		}
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	if rootFlags.prompt != "" {
		cfg.Prompt = rootFlags.prompt
	}
	if rootFlags.noColor {
		cfg.NoColor = true
	}
	return cfg, nil
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
