package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the seed genre vocabulary",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		for _, g := range a.genres.Vocabulary(ctx) {
			fmt.Println(g)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
}
