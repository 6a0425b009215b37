package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for shell output.
var (
	// PromptStyle renders the prompt before the input field.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// BannerStyle renders the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// DirEntryStyle renders directory names in listings.
	DirEntryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// OutputStyle renders ordinary command output.
	OutputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// ErrorStyle renders error lines.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// EchoedInputStyle renders the prompt+line echoed into the scrollback.
	EchoedInputStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	// HelpStyle renders the key hint line below the input.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
