// Package cli defines the vibeflow command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/vibeflow/internal/config"
)

var (
	cfgFile string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "vibeflow",
	Short: "Turn a vibe into a playlist",
	Long: `Vibeflow interprets a free-text mood prompt into audio target
parameters with a language model, searches the Spotify catalog for
matching tracks, and optionally materializes the result as a playlist.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ./vibeflow.yaml)")
}

func initConfig() error {
	// Credentials commonly live in a .env file during development;
	// a missing file is not an error.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
