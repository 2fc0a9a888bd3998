package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"billboard-locations/internal/config"
	"billboard-locations/internal/jsexport"
	"billboard-locations/internal/logging"
	"billboard-locations/internal/models"
	"billboard-locations/internal/repository"
	"billboard-locations/internal/table"
	"billboard-locations/internal/transform"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/radovskyb/watcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	input    string
	sheet    string
	output   string
	variable string
	columns  transform.Columns
}

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	file := flag.String("file", cfg.InputFile, "Path to the CSV or XLSX file to convert")
	sheet := flag.String("sheet", cfg.SheetName, "Workbook sheet to read (XLSX only)")
	out := flag.String("out", cfg.OutputFile, "Path of the JavaScript file to write")
	variable := flag.String("var", cfg.JSVariable, "Name of the declared array")
	syncDB := flag.Bool("sync-db", false, "Replace the PostGIS table with the converted locations")
	watch := flag.Bool("watch", false, "Convert again whenever the input file changes")
	flag.Parse()

	logger := logging.Setup(cfg.LogLevel, cfg.LogPretty)

	opts := options{
		input:    *file,
		sheet:    *sheet,
		output:   *out,
		variable: *variable,
		columns:  cfg.Columns(),
	}

	var repo *repository.Repository
	if *syncDB {
		if cfg.DBSource == "" {
			log.Fatal().Msg("DB_SOURCE is required with --sync-db")
		}
		pool, err := pgxpool.New(context.Background(), cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer pool.Close()

		repo = repository.NewRepository(pool)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare schema")
		}
	}

	convertOnce := func() error {
		locations, err := run(opts, logger)
		if err != nil {
			return err
		}
		if repo != nil {
			n, err := repo.ReplaceLocations(context.Background(), locations)
			if err != nil {
				return err
			}
			logger.Info().Int64("rows", n).Msg("database synced")
		}
		return nil
	}

	if err := convertOnce(); err != nil {
		log.Fatal().Err(err).Str("file", opts.input).Msg("conversion failed")
	}

	if *watch {
		if err := watchInput(opts.input, convertOnce, logger); err != nil {
			log.Fatal().Err(err).Msg("watcher stopped")
		}
	}
}

// run loads the sheet, builds the records and writes the JavaScript file.
// Nothing is written when loading or building fails.
func run(opts options, logger zerolog.Logger) ([]models.Location, error) {
	logger.Info().Str("file", opts.input).Msg("starting conversion")

	tbl, err := table.Load(opts.input, opts.sheet)
	if err != nil {
		return nil, err
	}

	locations, stats, err := transform.NewBuilder(opts.columns, logger).Build(tbl)
	if err != nil {
		return nil, err
	}

	err = jsexport.WriteFile(opts.output, locations, jsexport.Options{
		Variable: opts.variable,
		Source:   filepath.Base(opts.input),
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("out", opts.output).
		Int("rows", stats.Rows).
		Int("locations", stats.Emitted).
		Int("skipped", stats.Skipped).
		Msgf("Successfully generated %s with %d locations", filepath.Base(opts.output), stats.Emitted)
	return locations, nil
}

func watchInput(path string, convert func() error, logger zerolog.Logger) error {
	w := watcher.New()
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write, watcher.Create, watcher.Rename)

	go func() {
		for {
			select {
			case event := <-w.Event:
				logger.Info().Str("event", event.Op.String()).Msg("input changed")
				if err := convert(); err != nil {
					logger.Error().Err(err).Msg("conversion failed")
				}
			case err := <-w.Error:
				logger.Error().Err(err).Msg("watch error")
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	logger.Info().Str("file", path).Msg("watching for changes")
	return w.Start(500 * time.Millisecond)
}
