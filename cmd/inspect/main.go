package main

import (
	"flag"
	"os"

	"billboard-locations/internal/config"
	"billboard-locations/internal/inspect"
	"billboard-locations/internal/logging"
	"billboard-locations/internal/table"

	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		color.Red.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	file := flag.String("file", cfg.InputFile, "Path to the CSV or XLSX file to inspect")
	sheet := flag.String("sheet", cfg.SheetName, "Workbook sheet to read (XLSX only)")
	rows := flag.Int("rows", inspect.DefaultPreviewRows, "Number of rows to preview")
	flag.Parse()

	tbl, err := table.Load(*file, *sheet)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("cannot load sheet")
	}

	opts := inspect.Options{
		PreviewRows: *rows,
		Color:       color.SupportColor(),
	}
	if err := inspect.Report(os.Stdout, tbl, opts); err != nil {
		log.Fatal().Err(err).Msg("cannot write report")
	}
}
