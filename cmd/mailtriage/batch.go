package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mailtriage/internal/report"
	"mailtriage/internal/service"
)

var batchOut string

var batchCmd = &cobra.Command{
	Use:   "batch <paths...>",
	Short: "Classify many email files and write a CSV or XLSX report",
	Long: `Classify every given file concurrently and write one report row per file.

The report format follows the --out extension (.csv or .xlsx). Without --out,
a timestamped XLSX report is written to the current directory. Files that
fail are listed with their error; the command still succeeds.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := batchOut
		if out == "" {
			out = report.BuildFilename("mailtriage-report", "xlsx", time.Now())
		}
		write, err := reportWriter(out)
		if err != nil {
			return err
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}

		items, runErr := a.batch.ClassifyFiles(cmd.Context(), args)

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		if err := write(f, items); err != nil {
			_ = f.Close()
			return fmt.Errorf("write report: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close report: %w", err)
		}

		failed := countFailed(items)
		log.Info().
			Int("files", len(items)).
			Int("failed", failed).
			Str("report", out).
			Msg("batch classification finished")
		fmt.Fprintf(cmd.OutOrStdout(), "%d files classified, %d failed, report written to %s\n",
			len(items)-failed, failed, out)

		return runErr
	},
}

func reportWriter(out string) (func(w *os.File, items []service.BatchItem) error, error) {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".csv":
		return func(w *os.File, items []service.BatchItem) error { return report.WriteCSV(w, items) }, nil
	case ".xlsx":
		return func(w *os.File, items []service.BatchItem) error { return report.WriteXLSX(w, items) }, nil
	default:
		return nil, errors.New("--out must end in .csv or .xlsx")
	}
}

func countFailed(items []service.BatchItem) int {
	n := 0
	for i := range items {
		if items[i].Err != nil {
			n++
		}
	}
	return n
}

func init() {
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "report path ending in .csv or .xlsx")
	rootCmd.AddCommand(batchCmd)
}
