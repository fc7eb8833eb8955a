package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/highcard/internal/deck"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the deck",
	Long:  `Commands for inspecting the 36-card deck the game is played with.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards of the deck, top card first",
	Long: `List prints every card of a new deck, one per line, top card first.

With --shuffle the deck is shuffled the way a new game shuffles it, using
the configured seed, so the first two lines are the first cards you and the
program will draw.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		d := deck.New(deck.NewRand(cfg.Seed))
		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			for i := 0; i < cfg.InitialShuffles; i++ {
				d.Shuffle()
			}
		}

		out := cmd.OutOrStdout()
		for i, c := range d.Cards() {
			fmt.Fprintf(out, "%2d. %s\n", i+1, c)
		}
		fmt.Fprintf(out, "%d cards\n", d.Size())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)

	deckListCmd.Flags().BoolP("shuffle", "s", false, "Shuffle the deck as a new game would")
}
