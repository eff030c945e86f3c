package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zuperp/GoogleDataScraper/internal/config"
	"github.com/Zuperp/GoogleDataScraper/internal/logging"
	"github.com/Zuperp/GoogleDataScraper/internal/serpapi"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/models"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/output"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/parser"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/resolve"
	"github.com/Zuperp/GoogleDataScraper/pkg/hitsbatch/writer"
)

type runFlags struct {
	mockPath   string
	outputPath string
	overwrite  bool
	sheet      string
	scanRows   int
	maxEmpty   int
	domain     string
	language   string
	country    string
	apiKey     string
	reportPath string
	logLevel   string
	logFormat  string
}

func newRunCmd(configPath *string) *cobra.Command {
	var fl runFlags

	cmd := &cobra.Command{
		Use:   "run [input.xlsx]",
		Short: "Look up hit counts for every keyword in a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, *configPath, &fl, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fl.mockPath, "mock", "", "Read hit counts from the first column of this xlsx instead of calling the API")
	flags.StringVarP(&fl.outputPath, "output", "o", "", "Output file path (default: batch.default_output from settings)")
	flags.BoolVar(&fl.overwrite, "overwrite", false, "Write the results into the input file")
	flags.StringVar(&fl.sheet, "sheet", "", "Sheet holding the keywords (default: active sheet, then the others)")
	flags.IntVar(&fl.scanRows, "scan-rows", 0, "Rows searched for the header (default: from settings)")
	flags.IntVar(&fl.maxEmpty, "max-empty", -1, "Blank cells tolerated inside the keyword block (default: from settings)")
	flags.StringVar(&fl.domain, "domain", "", "Google domain, e.g. google.dk")
	flags.StringVar(&fl.language, "hl", "", "Language code")
	flags.StringVar(&fl.country, "gl", "", "Country code")
	flags.StringVar(&fl.apiKey, "api-key", "", "SerpAPI key (overrides settings and "+config.EnvAPIKey+")")
	flags.StringVar(&fl.reportPath, "report", "", "Write a .json or .yaml report of every row")
	flags.StringVar(&fl.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&fl.logFormat, "log-format", "console", "Log format: console or json")
	cmd.MarkFlagsMutuallyExclusive("output", "overwrite")

	return cmd
}

func runBatch(cmd *cobra.Command, configPath string, fl *runFlags, inputPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	log, err := logging.New(fl.logLevel, fl.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	undo := zap.ReplaceGlobals(log)
	defer undo()

	source, err := buildSource(cfg, fl, log)
	if err != nil {
		return err
	}

	opts := hitsbatch.DefaultOptions()
	opts.Sheet = fl.sheet
	opts.ScanRows = cfg.Batch.ScanRows
	if fl.scanRows > 0 {
		opts.ScanRows = fl.scanRows
	}
	maxEmpty := cfg.Batch.MaxConsecutiveEmpty
	if fl.maxEmpty >= 0 {
		maxEmpty = fl.maxEmpty
	}
	opts.MaxConsecutiveEmpty = &maxEmpty
	opts.Logger = log

	switch {
	case fl.overwrite:
		opts.Destination = writer.Overwrite()
	case fl.outputPath != "":
		opts.Destination = writer.Copy(fl.outputPath)
	default:
		opts.Destination = writer.Copy(cfg.Batch.DefaultOutput)
	}

	out := cmd.OutOrStdout()
	opts.Progress = func(done, total int, r models.RowResult) {
		fmt.Fprintf(out, "row %d of %d: %s -> %v\n", done, total, r.Keyword, writer.CellValue(r.Outcome))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := hitsbatch.Run(ctx, inputPath, source, opts)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if fl.reportPath != "" {
		if err := output.WriteReport(fl.reportPath, summary); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	fmt.Fprintf(out, "Done: only the %s column was updated in %s (%d rows)\n", hitsbatch.FieldHits, summary.WrittenPath, summary.Total)
	if summary.HasFailures() {
		fmt.Fprintf(out, "%d of %d rows failed; look for cells starting with %q\n", summary.Failed, summary.Total, writer.ErrorPrefix)
	}
	return nil
}

// buildSource picks the substitute fixture when --mock is given and the
// live SerpAPI lookup otherwise.
func buildSource(cfg *config.Settings, fl *runFlags, log *zap.Logger) (resolve.Source, error) {
	if fl.mockPath != "" {
		values, err := parser.ReadFixture(fl.mockPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read mock data: %w", err)
		}
		log.Info("using substitute hit counts", zap.String("fixture", fl.mockPath), zap.Int("values", len(values)))
		return resolve.NewSubstitute(values), nil
	}

	settings := resolve.LiveSettings{
		APIKey:   firstNonEmpty(fl.apiKey, cfg.SerpAPI.APIKey),
		Domain:   firstNonEmpty(fl.domain, cfg.SerpAPI.Domain),
		Language: firstNonEmpty(fl.language, cfg.SerpAPI.Language),
		Country:  firstNonEmpty(fl.country, cfg.SerpAPI.Country),
	}
	if settings.APIKey == "" {
		log.Warn("no SerpAPI key configured; every row will fail",
			zap.String("hint", "hitsbatch config set api_key <key> or set "+config.EnvAPIKey))
	}

	client := serpapi.New(
		serpapi.WithEndpoint(cfg.SerpAPI.Endpoint),
		serpapi.WithHTTPClient(&http.Client{Timeout: cfg.SerpAPI.Timeout.Duration}),
		serpapi.WithRequestDelay(cfg.SerpAPI.RequestDelay.Duration),
		serpapi.WithLogger(log),
	)
	return resolve.NewLive(client, settings), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
