package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "connectfour",
		Short: "Play connect four against a minimax search agent",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --verbose is provided, show per-move debug logging.
			if cmd.Flag("verbose").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("verbose", "v", false, "Show Debug Information")

	// Register the various commands.
	root.AddCommand(Play())
	root.AddCommand(Bench())

	return root
}
