package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vegasq/playcat/config"
	"github.com/vegasq/playcat/output"
	"github.com/vegasq/playcat/query"
	"github.com/vegasq/playcat/reader"
	"github.com/vegasq/playcat/table"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
	}
	os.Exit(1)
}

// options are the command-line flags. Zero values mean "not given" so
// that the config file and environment keep their say.
type options struct {
	configPath string
	dataDir    string
	pattern    string
	schema     string
	query      string
	format     string
	outPath    string
	limit      int
	workers    int
	verbose    bool
	source     string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{limit: -1, workers: -1}

	fsFlags := flag.NewFlagSet("playcat", flag.ContinueOnError)
	fsFlags.SetOutput(stderr)
	fsFlags.StringVar(&opts.configPath, "config", "", "Config file (default: $PLAYCAT_CONFIG or ./playcat.yaml)")
	fsFlags.StringVar(&opts.dataDir, "dir", "", "Directory containing the exports (default: $PLAYCAT_DATA_DIR or .)")
	fsFlags.StringVar(&opts.pattern, "pattern", "", "Export file pattern inside -dir, ** allowed (default: StreamingHistory*.json)")
	fsFlags.StringVar(&opts.schema, "schema", "", "Export layout: narrow or wide")
	fsFlags.StringVar(&opts.query, "q", "", "Query (e.g., \"where msplayed > 30000 group by artist order by COUNT desc limit 10\")")
	fsFlags.StringVar(&opts.format, "f", "", "Output format: "+strings.Join(output.Formats(), ", "))
	fsFlags.StringVar(&opts.outPath, "o", "", "Write results to this file instead of stdout")
	fsFlags.IntVar(&opts.limit, "limit", -1, "Limit number of rows (0 = unlimited)")
	fsFlags.IntVar(&opts.workers, "workers", -1, "Files parsed concurrently (0 = one per CPU)")
	fsFlags.BoolVar(&opts.verbose, "v", false, "Log progress to stderr")

	fsFlags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: playcat [options] [file or glob]\n\n")
		fmt.Fprintf(stderr, "Query a streaming-history export.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fsFlags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  playcat -dir ~/MyData\n")
		fmt.Fprintf(stderr, "  playcat -q \"where artist = 'air' order by time desc\" StreamingHistory0.json\n")
		fmt.Fprintf(stderr, "  playcat -schema wide -f table -q \"group by artist order by COUNT desc limit 10\" 'exports/endsong_*.json'\n")
		fmt.Fprintf(stderr, "  playcat -f parquet -o history.parquet -dir ~/MyData\n")
	}

	if err := fsFlags.Parse(args); err != nil {
		return nil, err
	}

	switch fsFlags.NArg() {
	case 0:
	case 1:
		opts.source = fsFlags.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one file argument, got %d", fsFlags.NArg())
	}
	return opts, nil
}

// apply overlays the flags that were given onto cfg.
func (o *options) apply(cfg *config.Config) error {
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	if o.pattern != "" {
		cfg.Pattern = o.pattern
	}
	if o.schema != "" {
		cfg.Schema = o.schema
	}
	if o.query != "" {
		cfg.Query = o.query
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.outPath != "" {
		cfg.Output.Path = o.outPath
	}
	if o.limit >= 0 {
		cfg.Limit = o.limit
	}
	if o.workers >= 0 {
		cfg.Workers = o.workers
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	return config.Validate(cfg)
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath, getenv)
	if err != nil {
		return err
	}
	if err := opts.apply(cfg); err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.Logging)

	schema, err := reader.SchemaByName(cfg.Schema)
	if err != nil {
		return err
	}

	q, err := query.Parse(cfg.Query)
	if err != nil {
		return fmt.Errorf("parsing query: %w", err)
	}

	// A positional argument wins over FROM, and FROM over discovery.
	source := opts.source
	if source == "" {
		source = q.Source
	}

	history, err := load(source, cfg, schema, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := query.Execute(q, history, schema)
	if err != nil {
		return err
	}
	if cfg.Limit > 0 {
		result = result.Limit(cfg.Limit)
	}
	logger.Debug("query executed", "rows", result.Len(), "elapsed", time.Since(start))

	return write(result, cfg.Output, stdout)
}

// load builds the history table from source, or from the files discovered
// under the configured data directory when source is empty.
func load(source string, cfg *config.Config, schema reader.Schema, logger *slog.Logger) (*table.Table, error) {
	readOpts := reader.Options{Workers: cfg.Workers, Logger: logger}
	start := time.Now()

	if source != "" {
		t, err := reader.ReadMultipleFiles(source, schema, readOpts)
		if err != nil {
			return nil, err
		}
		logger.Debug("table built", "source", source, "entries", t.Len(), "elapsed", time.Since(start))
		return t, nil
	}

	paths, err := reader.Discover(cfg.DataDir, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	logger.Debug("files discovered", "dir", cfg.DataDir, "pattern", cfg.Pattern, "files", len(paths), "elapsed", time.Since(start))

	t, err := reader.ReadFiles(paths, schema, readOpts)
	if err != nil {
		return nil, err
	}
	logger.Debug("table built", "entries", t.Len(), "elapsed", time.Since(start))
	return t, nil
}

func write(result *table.Table, cfg config.OutputConfig, stdout io.Writer) (err error) {
	formatter, err := output.New(cfg.Format, stdout)
	if err != nil {
		return err
	}

	if cfg.Path != "" {
		f, ferr := os.Create(cfg.Path)
		if ferr != nil {
			return fmt.Errorf("failed to create output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		formatter.SetOutput(f)
	}

	return formatter.Format(result)
}

func newLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
