package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewilliams-labs/vibeflow/internal/core/services"
)

var (
	vibeLimit   int
	vibeCreate  bool
	vibeDryRun  bool
	vibeName    string
	vibeJSON    bool
	vibeEnergy  float64
	vibeValence float64
)

var vibeCmd = &cobra.Command{
	Use:   "vibe \"<prompt>\"",
	Short: "Run the pipeline once for a prompt",
	Long: `Interpret a mood prompt, assemble a track list, and print it.
With --create the tracks are also saved to a new Spotify playlist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		req := services.VibeRequest{
			Prompt:         args[0],
			Limit:          vibeLimit,
			CreatePlaylist: vibeCreate,
			DryRun:         vibeDryRun,
			Name:           vibeName,
		}
		if cmd.Flags().Changed("energy") {
			req.EnergyOverride = &vibeEnergy
		}
		if cmd.Flags().Changed("valence") {
			req.ValenceOverride = &vibeValence
		}

		resp, err := a.orchestrator.BuildPlaylist(ctx, req)
		if err != nil {
			return err
		}

		if vibeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		printVibe(resp)
		return nil
	},
}

func printVibe(resp services.VibeResponse) {
	p := resp.Params
	fmt.Printf("vibe: %s\n", p.Reasoning)
	fmt.Printf("  valence=%.2f energy=%.2f danceability=%.2f tempo=%d-%d genres=%s\n",
		p.TargetValence, p.TargetEnergy, p.TargetDanceability,
		p.MinTempo, p.MaxTempo, strings.Join(p.SeedGenres, ","))

	for i, t := range resp.Tracks {
		fmt.Printf("%3d. %s - %s\n", i+1, t.Name, strings.Join(t.Artists, ", "))
	}

	if resp.Playlist != nil {
		fmt.Printf("\nplaylist %q created with %d tracks: %s\n",
			resp.Playlist.PlaylistName, resp.Playlist.TrackCount, resp.Playlist.PlaylistURL)
	}
}

func init() {
	vibeCmd.Flags().IntVarP(&vibeLimit, "limit", "l", 0, "number of tracks (5-50, default 20)")
	vibeCmd.Flags().BoolVar(&vibeCreate, "create", false, "create a Spotify playlist from the result")
	vibeCmd.Flags().BoolVar(&vibeDryRun, "dry-run", false, "preview tracks without creating a playlist")
	vibeCmd.Flags().StringVarP(&vibeName, "name", "n", "", "playlist name (defaults to the prompt)")
	vibeCmd.Flags().Float64Var(&vibeEnergy, "energy", 0, "override the interpreted energy target (0-1)")
	vibeCmd.Flags().Float64Var(&vibeValence, "valence", 0, "override the interpreted valence target (0-1)")
	vibeCmd.Flags().BoolVarP(&vibeJSON, "json", "j", false, "output as JSON")
	rootCmd.AddCommand(vibeCmd)
}
