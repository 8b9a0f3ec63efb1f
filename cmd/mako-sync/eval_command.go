package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gwherrett/mako-sync/internal/eval"
)

func newEvalCommand(cctx *commandContext) *cobra.Command {
	var fixturePath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run the matcher over the labeled fixture corpus",
		Long: "Evaluates matching accuracy against labeled cases and enforces the " +
			"non-regression contract: zero false positives and a bounded " +
			"false-negative rate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			path := fixturePath
			if path == "" {
				path = cfg.Eval.FixturePath
			}
			if path == "" {
				return fmt.Errorf("no fixture corpus: set eval.fixture_path or pass --fixtures")
			}

			cases, err := eval.Load(path)
			if err != nil {
				return err
			}
			report, err := eval.Evaluate(cases)
			if err != nil {
				return err
			}

			if asJSON {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
				return eval.Check(report, cfg.Eval.MaxFalseNegativeRate)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %d cases\n", report.RunID, report.Cases)
			fmt.Fprintf(out, "  true positives:  %d\n", report.TruePositives)
			fmt.Fprintf(out, "  false positives: %d\n", report.FalsePositives)
			fmt.Fprintf(out, "  true negatives:  %d\n", report.TrueNegatives)
			fmt.Fprintf(out, "  false negatives: %d\n", report.FalseNegatives)
			fmt.Fprintf(out, "  recall: %.3f\n", report.Recall())

			if len(report.Categories) > 0 {
				categories := make([]string, 0, len(report.Categories))
				for name := range report.Categories {
					categories = append(categories, name)
				}
				sort.Strings(categories)
				rows := make([][]string, 0, len(categories))
				for _, name := range categories {
					stats := report.Categories[name]
					rows = append(rows, []string{
						name,
						strconv.Itoa(stats.Passed),
						strconv.Itoa(stats.Failed),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"Category", "Passed", "Failed"}, rows))
			}

			for _, failure := range report.Failures {
				fmt.Fprintf(out, "FAIL %s [%s/%s]: %s\n",
					failure.Case, failure.Verdict, failure.Category, failure.Detail)
			}

			return eval.Check(report, cfg.Eval.MaxFalseNegativeRate)
		},
	}

	cmd.Flags().StringVar(&fixturePath, "fixtures", "", "Path to the labeled fixture corpus (JSON)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	return cmd
}
