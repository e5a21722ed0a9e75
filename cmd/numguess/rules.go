// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/numguess/numguess/internal/game"
	"github.com/numguess/numguess/internal/issue"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const rulesMarkdown = `# How to play

The game picks a **secret number** between %d and %d, inclusive.

1. Type a guess and press Enter.
2. The game answers:
   - **Too small!** when your guess is below the secret
   - **Too big!** when your guess is above the secret
   - **You win!** when you found it
3. Anything that is not a whole number is rejected and you may try again.
   Rejected lines are free.

Once you win the secret is revealed and the game ends with exit status 0.
Closing the input before that (Ctrl+D) ends the game with exit status 1.

## Playing over SSH

Run ` + "`numguess serve`" + ` and connect with ` + "`ssh -p 2222 localhost`" + `.
Every connection gets its own secret.
`

// troubleshootingMarkdown lists every issue page with its documentation links.
func troubleshootingMarkdown() string {
	var sb strings.Builder
	sb.WriteString("\n## When something goes wrong\n\n")
	sb.WriteString("Run with `--verbose` to get the full help page for these errors:\n\n")
	for _, page := range issue.Values() {
		sb.WriteString("- " + page.Title())
		for _, link := range page.DocLinks() {
			sb.WriteString(" <" + string(link) + ">")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func newRulesCommand(app *App, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show how to play",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(contextOrBackground(cmd.Context()), flags)
			if err != nil {
				return err
			}

			rng := game.Range{Min: cfg.Game.Min, Max: cfg.Game.Max}
			if rng == (game.Range{}) {
				rng = game.DefaultRange()
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(cfg.UI.ColorScheme.GlamourStyle()),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}

			out, err := renderer.Render(fmt.Sprintf(rulesMarkdown, rng.Min, rng.Max) + troubleshootingMarkdown())
			if err != nil {
				return fmt.Errorf("failed to render rules: %w", err)
			}

			fmt.Fprint(app.stdout, out)
			return nil
		},
	}
}
