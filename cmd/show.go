package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/highcard/internal/card"
)

const faceWidth = 9

var showCmd = &cobra.Command{
	Use:   "show [rank] [suit]",
	Short: "Draw a single card in the terminal",
	Long: `Show draws the face of one card, centered in the terminal.
The rank must be a number from 2 to 10. The suit is matched without regard
to case; anything that is not clubs, diamonds, hearts or spades is shown as
clubs, just as the game would treat it.

Examples:
  highcard show 7 hearts
  highcard show 10 SPADES`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := card.ParseRank(args[0])
		if err != nil {
			return err
		}
		c, err := card.New(rank, args[1])
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, renderCard(c, outputWidth(out), useColor(cfg, out)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// outputWidth returns the terminal width of w, or 80 when w is not a terminal
func outputWidth(w io.Writer) int {
	if f, ok := terminal(w); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// suitColor returns the color a suit is printed in
func suitColor(s card.Suit) colorful.Color {
	switch s {
	case card.Hearts:
		return colorful.Hsv(355, 0.85, 0.9)
	case card.Diamonds:
		return colorful.Hsv(20, 0.85, 0.95)
	case card.Clubs:
		return colorful.Hsv(210, 0.15, 0.85)
	default:
		return colorful.Hsv(0, 0, 0.95)
	}
}

// renderCard draws c as a boxed card face followed by its name, centered in width
func renderCard(c card.Card, width int, useColor bool) string {
	rank := fmt.Sprintf("%d", c.Rank())
	symbol := c.Suit().Symbol()
	if useColor {
		symbol = ansiForeground(symbol, suitColor(c.Suit()))
	}

	blank := strings.Repeat(" ", faceWidth)
	middle := strings.Repeat(" ", faceWidth/2) + symbol + strings.Repeat(" ", faceWidth-faceWidth/2-1)

	lines := []string{
		"┌" + strings.Repeat("─", faceWidth) + "┐",
		"│" + rank + strings.Repeat(" ", faceWidth-len(rank)) + "│",
		"│" + blank + "│",
		"│" + middle + "│",
		"│" + blank + "│",
		"│" + strings.Repeat(" ", faceWidth-len(rank)) + rank + "│",
		"└" + strings.Repeat("─", faceWidth) + "┘",
		c.String(),
	}

	var buffer strings.Builder
	buffer.WriteString("\n")
	for _, line := range lines {
		if pad := (width - visibleWidth(line)) / 2; pad > 0 {
			buffer.WriteString(strings.Repeat(" ", pad))
		}
		buffer.WriteString(line)
		buffer.WriteString("\n")
	}
	buffer.WriteString("\n")
	return buffer.String()
}

// ansiForeground wraps s in a 24-bit foreground color escape
func ansiForeground(s string, col colorful.Color) string {
	r, g, b := col.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// visibleWidth counts the runes of s that take up a terminal column
func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
