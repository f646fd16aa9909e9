package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/settleup/pkg/logging"
)

var logLevel string

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "settle",
		Short:        "Split shared expenses evenly and list who pays whom",
		SilenceUsage: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.Options{Level: logLevel, Writer: os.Stderr})
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(runCmd(), hashPasswordCmd())
	return root
}
