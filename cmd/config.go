package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/highcard/internal/config"
	"github.com/arcanaland/highcard/internal/types"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the highcard config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default values if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(cmd)
		if _, err := config.InitConfig(path); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath(cmd))
	},
}

// configSetSeedCmd represents the config set-seed command
var configSetSeedCmd = &cobra.Command{
	Use:   "set-seed [seed]",
	Short: "Set the seed used to shuffle the deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return types.WrapError(types.ErrInvalidArgument, "seed must be an integer", err)
		}

		if err := config.SetSeed(configPath(cmd), seed); err != nil {
			return fmt.Errorf("error setting seed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seed set to: %d\n", seed)
		return nil
	},
}

// configPath returns --config or the default config location
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.GetConfigFilePath()
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetSeedCmd)
}
