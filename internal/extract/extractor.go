// Package extract turns uploaded documents into plain text.
package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"mailtriage/internal/domain"
)

// Extractor reads a staged document and always deletes it afterwards.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the text of the document at path. ext is the declared file
// extension, with or without the leading dot. The file is removed on every
// return path, including unsupported types that are never opened.
func (e *Extractor) Extract(path, ext string) domain.ExtractionOutcome {
	defer removeStaged(path)

	var outcome domain.ExtractionOutcome
	switch domain.FileType(NormalizeExt(ext)) {
	case domain.FileTypeTXT:
		outcome = extractText(path)
	case domain.FileTypePDF:
		outcome = extractPDF(path)
	default:
		return domain.ExtractionFailed(domain.ExtractionUnsupportedType,
			fmt.Errorf("extension %q", ext))
	}

	if !outcome.OK() {
		return outcome
	}
	text := strings.TrimSpace(outcome.Text)
	if text == "" {
		return domain.ExtractionFailed(domain.ExtractionEmptyContent, nil)
	}
	return domain.ExtractedText(text)
}

// NormalizeExt lowercases an extension and strips the leading dot.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

func removeStaged(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("extract: failed to remove staged file")
	}
}
