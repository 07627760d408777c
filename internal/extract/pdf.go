package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"

	"mailtriage/internal/domain"
)

// extractPDF concatenates the text of every page in document order. A PDF
// with no text operators (typically a scan) yields an empty success, which
// Extract reports as empty content.
func extractPDF(path string) domain.ExtractionOutcome {
	f, err := os.Open(path)
	if err != nil {
		return domain.ExtractionFailed(domain.ExtractionReadFailure, err)
	}
	defer func() { _ = f.Close() }()

	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		return domain.ExtractionFailed(domain.ExtractionDecodeFailure, fmt.Errorf("pdfcpu read: %w", err))
	}

	var sb strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		text, err := pageText(ctx, pageNr)
		if err != nil {
			log.Debug().Err(err).Int("page", pageNr).Msg("extract: skipping unreadable PDF page")
			continue
		}
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
	}
	return domain.ExtractedText(sb.String())
}

func pageText(ctx *model.Context, pageNr int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return textFromContentStream(data), nil
}
