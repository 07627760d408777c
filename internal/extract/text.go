package extract

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"mailtriage/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// extractText reads a plain-text file as UTF-8, falling back to Latin-1 when
// the bytes are not valid UTF-8.
func extractText(path string) domain.ExtractionOutcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ExtractionFailed(domain.ExtractionReadFailure, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return domain.ExtractedText(string(data))
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return domain.ExtractionFailed(domain.ExtractionDecodeFailure,
			fmt.Errorf("latin-1 fallback: %w", err))
	}
	return domain.ExtractedText(string(decoded))
}
