package cmd

import (
	"fmt"
	"os"

	"jumplist-exporter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "jumplist-exporter",
	Short: "Windows Jump List exporter",
	Long: `Jump List Exporter reconciles decoded automatic and custom destinations
containers into one record per entry and exports them to CSV, JSON, XHTML
and SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with development timestamps, the run logger may not exist yet
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
