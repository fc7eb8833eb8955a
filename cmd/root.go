package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"k8s.io/klog/v2"

	"github.com/arcanaland/highcard/internal/config"
	"github.com/arcanaland/highcard/internal/deck"
	"github.com/arcanaland/highcard/internal/game"
)

// RootCmd represents the base command; run without subcommands it plays a game
var RootCmd = &cobra.Command{
	Use:   "highcard",
	Short: "Draw cards against the computer, highest card wins",
	Long: `Highcard is a small console card game. A deck of 36 cards (2 to 10 in
clubs, diamonds, hearts and spades) is shuffled, then you and the program
each draw a card and the higher rank wins. Suits never break ties.

The deck is shuffled with a fixed seed, so the same seed and the same
answers always replay the same game. Set it with --seed, the "seed" key of
the config file, or the HIGHCARD_SEED environment variable.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer klog.Flush()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		klog.V(1).Infof("seed %d, %d initial shuffles", cfg.Seed, cfg.InitialShuffles)

		g := game.New(deck.NewRand(cfg.Seed), cmd.InOrStdin(), cmd.OutOrStdout(),
			game.WithInitialShuffles(cfg.InitialShuffles),
			game.WithColor(useColor(cfg, cmd.OutOrStdout())))
		return g.Start()
	},
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Path to the config file (default $XDG_CONFIG_HOME/highcard/config.toml)")
	RootCmd.PersistentFlags().Int64("seed", deck.DefaultSeed, "Seed for the shuffles, overrides the config file")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	RootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the config file named by --config and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	return cfg, nil
}

// useColor reports whether output written to w should be colored
func useColor(cfg *config.Config, w io.Writer) bool {
	f, ok := terminal(w)
	return ok && !cfg.NoColor && term.IsTerminal(int(f.Fd()))
}

// terminal returns w as a file when it is one that may be a terminal
func terminal(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	return f, ok && f != nil
}
