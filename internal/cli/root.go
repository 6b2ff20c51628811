package cli

import (
	"github.com/shadowzevax/Extensor-SRT/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "extensor",
	Short: "Remove silent gaps between SRT subtitles",
	Long: `Extensor rewrites the timing of SRT subtitle files so that every
caption stays on screen until the next one appears, and extends the
final caption by a configurable margin.

It can process files directly or run as a small upload/download server.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
