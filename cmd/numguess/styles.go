// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"github.com/numguess/numguess/internal/game"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - shared hex colors for consistent theming across all CLI output.
const (
	// ColorPrimary is purple - used for titles and the intro line.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and the prompt.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess is green - used for the win and other positive outcomes.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError is red - used for errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and rejected input.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for hints, keys and commands.
	ColorHighlight = lipgloss.Color("#3B82F6")

	// ColorVerbose is light gray - used for echoed input and supplementary details.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names, config keys and hints.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// VerboseStyle is for supplementary information.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)

	// lineStyles decorates each game line kind.
	lineStyles = map[game.LineKind]lipgloss.Style{
		game.LineIntro:    TitleStyle,
		game.LinePrompt:   SubtitleStyle,
		game.LineEcho:     VerboseStyle,
		game.LineInvalid:  WarningStyle,
		game.LineTooSmall: CmdStyle,
		game.LineTooBig:   CmdStyle,
		game.LineWin:      SuccessStyle.Bold(true),
		game.LineReveal:   SubtitleStyle,
	}
)

// gameStyler returns the lipgloss styler for terminal output, or the plain
// styler when colors are off.
func gameStyler(color bool) game.Styler {
	if !color {
		return game.PlainStyler
	}
	return func(kind game.LineKind, text string) string {
		style, ok := lineStyles[kind]
		if !ok {
			return text
		}
		return style.Render(text)
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
