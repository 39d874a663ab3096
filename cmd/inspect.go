package cmd

import (
	"fmt"
	"os"

	"jumplist-exporter/core/utils"
	"jumplist-exporter/feature/jumplist"
	"jumplist-exporter/feature/jumplist/decoded"
	"jumplist-exporter/feature/jumplist/models"
	"jumplist-exporter/feature/jumplist/narrator"
	"jumplist-exporter/feature/jumplist/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inspectWithDir bool
	inspectDebug   bool
)

// inspectCmd narrates a single container at full detail.
var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Print the full structure of one jump list",
	Long: `Narrates one container with every shortcut, shell item and extra data
block, followed by the DestList reconciliation summary. Nothing is exported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectWithDir, "withDir", false, "Include entries found in the Directory but not in the DestList")
	inspectCmd.Flags().BoolVar(&inspectDebug, "debug", false, "Show debug information")

	RootCmd.AddCommand(inspectCmd)
}

func runInspect(path string) error {
	env, err := setup(inspectDebug, "")
	if err != nil {
		return err
	}
	l := env.logger
	defer l.Sync()

	layout, err := utils.GoLayout(dateFormat("", env.cfg.Export.DateFormat, false))
	if err != nil {
		return err
	}
	narr := narrator.New(os.Stdout, narrator.Options{
		Layout:     layout,
		Detail:     narrator.DetailFull,
		Color:      narrator.ShouldColorize(os.Stdout),
		Properties: env.tables.Properties,
		Vendors:    env.tables.Vendors,
	}, l)

	loader := decoded.NewLoader(env.fs, env.tables.AppIDs)
	svc := jumplist.NewService(env.fs, loader, nil, reconcile.NewBuilder(layout, l), narr, l, jumplist.Options{
		WithDir: inspectWithDir,
	})

	paths, err := svc.Collect(path, "")
	if err != nil {
		return err
	}

	batch := svc.Process(paths)
	if len(batch.Failures) > 0 {
		return batch.Failures[0].Err
	}

	for _, auto := range batch.Automatic {
		printPlan(l, auto)
	}
	if len(batch.Skipped) > 0 {
		fmt.Println(batch.Skipped[0].Err)
	}
	return nil
}

// printPlan logs how the DestList lines up with the directory streams.
func printPlan(l *zap.Logger, auto *models.AutomaticDestination) {
	s := reconcile.Plan(auto).Summary

	l.Info("Reconciliation summary",
		zap.String("file", auto.SourceFile),
		zap.Int("total_items", s.TotalItems),
		zap.Int("destlist_items", s.ManifestItems),
		zap.Int("directory_streams", s.ListingItems-s.StructuralItems),
		zap.Int("missing_stream", s.MissingListing),
		zap.Int("missing_destlist", s.MissingManifest),
	)
	if mismatch := reconcile.CheckConsistency(auto); mismatch != nil {
		l.Warn(mismatch.String(), zap.String("file", auto.SourceFile))
	}
}
