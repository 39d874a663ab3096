package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"jumplist-exporter/core/database"
	"jumplist-exporter/core/storage"
	"jumplist-exporter/core/utils"
	"jumplist-exporter/feature/jumplist"
	"jumplist-exporter/feature/jumplist/decoded"
	"jumplist-exporter/feature/jumplist/export"
	"jumplist-exporter/feature/jumplist/models"
	"jumplist-exporter/feature/jumplist/narrator"
	"jumplist-exporter/feature/jumplist/reconcile"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// exportFlags holds the command line of the export command.
type exportFlags struct {
	file       string
	dir        string
	all        bool
	csvDir     string
	csvFile    string
	jsonDir    string
	pretty     bool
	htmlDir    string
	sqlitePath string
	quiet      bool
	linkDetail bool
	fullDetail bool
	withDir    bool
	appIDs     string
	dumpTo     string
	dateFormat string
	precise    bool
	debug      bool
}

var exportOpts exportFlags

// exportCmd processes jump list containers and writes them to the selected sinks.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Reconcile jump lists and export them",
	Long: `Processes a single container (-f) or every container under a directory (-d).

Each container is read through its decoded document (<container>.json),
narrated to the console unless --quiet is set, and exported to every
selected sink once all files have been processed.

Examples:
  # Narrate every jump list of a profile
  export -d C:\Users\bob\AppData\Roaming\Microsoft\Windows\Recent

  # CSV and XHTML, directory entries included
  export -d ./case --csv ./out --html ./out --withDir -q

  # One container to pretty JSON and SQLite
  export -f 1b4dd67f29cb1962.automaticDestinations-ms --json ./out --pretty --sqlite ./case.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(&exportOpts)
	},
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportOpts.file, "file", "f", "", "File to process. Either this or -d is required")
	f.StringVarP(&exportOpts.dir, "directory", "d", "", "Directory to recursively process. Either this or -f is required")
	f.BoolVar(&exportOpts.all, "all", false, "Process all files in directory vs. only files matching *.automaticDestinations-ms or *.customDestinations-ms")
	f.StringVar(&exportOpts.csvDir, "csv", "", "Directory to save CSV formatted results to")
	f.StringVar(&exportOpts.csvFile, "csvf", "", "File name to save CSV formatted results to. When present, overrides default name")
	f.StringVar(&exportOpts.jsonDir, "json", "", "Directory to save JSON formatted results to. One file per container")
	f.BoolVar(&exportOpts.pretty, "pretty", false, "When exporting to JSON, use a more human readable layout")
	f.StringVar(&exportOpts.htmlDir, "html", "", "Directory to save XHTML formatted results to")
	f.StringVar(&exportOpts.sqlitePath, "sqlite", "", "SQLite database file to append results to")
	f.BoolVarP(&exportOpts.quiet, "quiet", "q", false, "Only show the filename being processed vs all output")
	f.BoolVar(&exportOpts.linkDetail, "ld", false, "Include more information about lnk files")
	f.BoolVar(&exportOpts.fullDetail, "fd", false, "Include full information about lnk files, shell items and extra blocks")
	f.BoolVar(&exportOpts.withDir, "withDir", false, "Include entries found in the Directory but not in the DestList")
	f.StringVar(&exportOpts.appIDs, "appIds", "", "Path to file containing AppIDs and descriptions (appid|description format)")
	f.StringVar(&exportOpts.dumpTo, "dumpTo", "", "Directory to save exported lnk files")
	f.StringVar(&exportOpts.dateFormat, "dt", "", "The custom date/time format to use when displaying timestamps")
	f.BoolVar(&exportOpts.precise, "mp", false, "Display higher precision for timestamps")
	f.BoolVar(&exportOpts.debug, "debug", false, "Show debug information during processing")

	exportCmd.MarkFlagsMutuallyExclusive("file", "directory")

	RootCmd.AddCommand(exportCmd)
}

func runExport(flags *exportFlags) error {
	if flags.file == "" && flags.dir == "" {
		return errors.New("either -f or -d is required")
	}

	env, err := setup(flags.debug, flags.appIDs)
	if err != nil {
		return err
	}
	l := env.logger
	defer l.Sync()

	layout, err := utils.GoLayout(dateFormat(flags.dateFormat, env.cfg.Export.DateFormat, flags.precise))
	if err != nil {
		return err
	}
	output := storage.NewClient(env.fs)
	builder := reconcile.NewBuilder(layout, l)

	var narr *narrator.Narrator
	if !flags.quiet {
		narr = narrator.New(os.Stdout, narrator.Options{
			Layout:     layout,
			Detail:     detail(flags.linkDetail, flags.fullDetail),
			Color:      narrator.ShouldColorize(os.Stdout),
			Properties: env.tables.Properties,
			Vendors:    env.tables.Vendors,
		}, l)
	}

	svc := jumplist.NewService(env.fs, decoded.NewLoader(env.fs, env.tables.AppIDs), output, builder, narr, l, jumplist.Options{
		All:     flags.all,
		WithDir: flags.withDir,
		Quiet:   flags.quiet,
		DumpTo:  flags.dumpTo,
	})

	paths, err := svc.Collect(flags.file, flags.dir)
	if err != nil {
		return err
	}

	batch := svc.Process(paths)
	batch.WriteReport(os.Stdout)

	opts := export.Options{
		CSVDir:    flags.csvDir,
		CSVFile:   flags.csvFile,
		JSONDir:   flags.jsonDir,
		Pretty:    flags.pretty || env.cfg.Export.Pretty,
		HTMLDir:   flags.htmlDir,
		BatchSize: env.cfg.Database.BatchSize,
	}

	sqlitePath := flags.sqlitePath
	if sqlitePath == "" {
		sqlitePath = env.cfg.Database.Path
	}
	if sqlitePath != "" {
		cfg := env.cfg.Database
		cfg.Path = sqlitePath
		db, err := database.Connect(cfg)
		if err != nil {
			// The file sinks still run without the database
			l.Error("Unable to open SQLite database, sink disabled", zap.String("path", sqlitePath), zap.Error(err))
		} else {
			defer closeDatabase(db, l)
			opts.DB = db
			opts.RunID = uuid.New().String()
		}
	}

	if !opts.Enabled() {
		return nil
	}

	exportRecords(svc, batch, opts, output, l)
	return nil
}

// exportRecords runs the exporter once per container kind present in the batch.
func exportRecords(svc *jumplist.Service, batch *jumplist.Batch, opts export.Options, output storage.Client, l *zap.Logger) {
	exporter := export.NewExporter(output, opts, export.Stamp(time.Now().UTC()), l)
	sets := svc.Records(batch)

	for _, kind := range []models.Kind{models.KindAutomatic, models.KindCustom} {
		if len(sets[kind]) == 0 {
			continue
		}
		for _, res := range exporter.Export(kind, sets[kind]) {
			if res.Err != nil {
				continue
			}
			l.Info(fmt.Sprintf("Exported %d %s records", res.Records, kind),
				zap.String("sink", res.Sink),
				zap.Int("containers", len(sets[kind])))
		}
	}
}

func closeDatabase(db *gorm.DB, l *zap.Logger) {
	if err := database.Close(db); err != nil {
		l.Warn("Failed to close database", zap.Error(err))
	}
}

// dateFormat picks the display format: --mp wins over --dt, which wins over
// the configured default.
func dateFormat(flag, configured string, precise bool) string {
	switch {
	case precise:
		return utils.PreciseDateFormat
	case flag != "":
		return flag
	case configured != "":
		return configured
	default:
		return utils.DefaultDateFormat
	}
}

func detail(link, full bool) narrator.Detail {
	switch {
	case full:
		return narrator.DetailFull
	case link:
		return narrator.DetailLink
	default:
		return narrator.DetailPath
	}
}
