package port

import "mailtriage/internal/domain"

// TextExtractor turns a staged document into text. Implementations delete the
// file at path before returning.
type TextExtractor interface {
	Extract(path, ext string) domain.ExtractionOutcome
}
