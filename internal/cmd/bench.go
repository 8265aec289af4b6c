package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"connectfour/experiments"
)

// connectfour bench
func Bench() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the depth matchup experiments",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`bench plays round-robin matchups between search
			agents of increasing depth and records per-move search
			metrics (nodes, cutoffs, leaf evaluations, timing) plus game
			outcomes as CSV files under a timestamped directory.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir, _ := cmd.Flags().GetString("out")
			return experiments.RunDepthMatchups(outDir)
		},
	}

	cmd.Flags().String("out", "experiments", "Directory for the CSV records")

	return cmd
}
