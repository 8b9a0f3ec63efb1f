package main

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gwherrett/mako-sync/internal/logging"
	"github.com/gwherrett/mako-sync/internal/match"
	"github.com/gwherrett/mako-sync/internal/spotify"
)

type missingReport struct {
	RunID     string                 `json:"run_id"`
	Total     int                    `json:"total"`
	Matched   int                    `json:"matched"`
	TierCount map[string]int         `json:"tier_counts"`
	Missing   []match.StreamingTrack `json:"missing"`
}

func newMissingCommand(cctx *commandContext) *cobra.Command {
	var playlistID string
	var threshold int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Report streaming tracks with no local counterpart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			st, err := cctx.openStore()
			if err != nil {
				return fmt.Errorf("open library database: %w", err)
			}
			defer st.Close()

			ctx := cmd.Context()
			locals, err := st.All(ctx)
			if err != nil {
				return fmt.Errorf("load local library: %w", err)
			}
			if len(locals) == 0 {
				return fmt.Errorf("local library is empty, run 'mako-sync scan' first")
			}

			client, err := spotify.NewClient(ctx, cfg, logger)
			if err != nil {
				return err
			}
			var streaming []match.StreamingTrack
			if playlistID != "" {
				streaming, err = client.PlaylistTracks(ctx, playlistID)
			} else {
				streaming, err = client.SavedTracks(ctx)
			}
			if err != nil {
				return err
			}

			if threshold == 0 {
				threshold = cfg.Matching.FuzzyThreshold
			}
			matcher := &match.Matcher{Index: match.BuildIndex(locals), Threshold: threshold}

			report := missingReport{
				RunID:     uuid.NewString(),
				Total:     len(streaming),
				TierCount: make(map[string]int),
			}
			for _, track := range streaming {
				result := matcher.Match(track)
				if result.Matched {
					report.Matched++
					report.TierCount[result.Tier.String()]++
					continue
				}
				report.Missing = append(report.Missing, track)
			}
			sort.Slice(report.Missing, func(i, j int) bool {
				a, b := report.Missing[i], report.Missing[j]
				if a.Artist != b.Artist {
					return a.Artist < b.Artist
				}
				return a.Title < b.Title
			})

			logger.Info("match run complete",
				logging.String("run_id", report.RunID),
				logging.Int("total", report.Total),
				logging.Int("matched", report.Matched),
				logging.Int("missing", len(report.Missing)))

			if asJSON {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			if len(report.Missing) == 0 {
				fmt.Fprintf(out, "All %d streaming tracks are present locally\n", report.Total)
				return nil
			}
			rows := make([][]string, 0, len(report.Missing))
			for _, track := range report.Missing {
				rows = append(rows, []string{track.Artist, track.Title, track.Album, track.Category})
			}
			fmt.Fprintln(out, renderTable([]string{"Artist", "Title", "Album", "Category"}, rows))
			fmt.Fprintf(out, "%d of %d streaming tracks missing locally (%d matched)\n",
				len(report.Missing), report.Total, report.Matched)
			return nil
		},
	}

	cmd.Flags().StringVar(&playlistID, "playlist", "", "Match a playlist instead of saved tracks")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Fuzzy similarity threshold override (1-100)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	return cmd
}
