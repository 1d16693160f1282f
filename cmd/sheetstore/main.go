package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jasonnnn886/sheetstore/internal/config"
	"github.com/jasonnnn886/sheetstore/internal/core"
	"github.com/jasonnnn886/sheetstore/internal/dataset"
	"github.com/jasonnnn886/sheetstore/internal/logging"
	"github.com/jasonnnn886/sheetstore/internal/store"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sheetstore",
	Short: "Spreadsheet import/export for the product, customer and order store",
	Long: `sheetstore reconciles spreadsheet data with a relational store.

Examples:
  sheetstore import data.xlsx                   import all sheets
  sheetstore import data.xlsx --sheet products  import a single sheet
  sheetstore export output.xlsx                 export all data
  sheetstore clear --confirm                    delete all data
  sheetstore serve                              run the admin server`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// boot loads .env and config, configures logging and opens the store.
// Callers must Close the returned store on every exit path.
func boot() (*config.Config, *store.Store, *core.Service, error) {
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	st, err := store.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, nil, nil, err
	}

	svc := core.NewService(st, dataset.Defaults{
		Status: cfg.Import.DefaultStatus,
		Now:    time.Now,
	})
	return cfg, st, svc, nil
}
