package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mailtriage/internal/domain"
	"mailtriage/internal/service"
)

var (
	classifyFile string
	classifyText string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single email and print the result as JSON",
	Example: `  mailtriage classify --text "Preciso de uma atualização sobre o chamado 12345."
  mailtriage classify --file ./inbox/pedido.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (classifyFile == "") == (classifyText == "") {
			return errors.New("exactly one of --file or --text is required")
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}

		var req *domain.ClassificationRequest
		if classifyFile != "" {
			req, err = requestFromFile(cmd.Context(), a.uploads, classifyFile, cfg.Input.MinContentLength)
		} else {
			if err = service.RequireMinLength(classifyText, cfg.Input.MinContentLength); err == nil {
				req, err = domain.NewClassificationRequest(classifyText, domain.SourceText, "")
			}
		}
		if err != nil {
			return err
		}

		result, err := a.pipeline.Process(cmd.Context(), req)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	},
}

// requestFromFile extracts path through the upload service and applies the
// same minimum length as the HTTP upload route.
func requestFromFile(ctx context.Context, uploads service.UploadService, path string, minLength int) (*domain.ClassificationRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	size := int64(-1)
	if info, statErr := f.Stat(); statErr == nil {
		size = info.Size()
	}
	req, err := uploads.Ingest(ctx, service.UploadInput{
		Filename: filepath.Base(path),
		Size:     size,
		Reader:   f,
	})
	if err != nil {
		return nil, err
	}
	if err := service.RequireMinLength(req.Content(), minLength); err != nil {
		return nil, err
	}
	return req, nil
}

func init() {
	classifyCmd.Flags().StringVar(&classifyFile, "file", "", "path of a TXT or PDF email to classify")
	classifyCmd.Flags().StringVar(&classifyText, "text", "", "email content to classify")
	rootCmd.AddCommand(classifyCmd)
}
