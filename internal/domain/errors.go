package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyContent        = errors.New("content cannot be empty")
	ErrContentTooShort     = errors.New("content is too short")
	ErrInvalidSource       = errors.New("invalid content source")
	ErrMissingFile         = errors.New("no file selected")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("failed to store uploaded file")

	ErrExtractionUnsupported = errors.New("document type not supported for extraction")
	ErrExtractionEmpty       = errors.New("no text content found in the document")
	ErrExtractionDecode      = errors.New("document could not be decoded")
	ErrExtractionRead        = errors.New("document could not be read")
)

// ExtractionError is the error form of a failed ExtractionOutcome.
// It matches the per-kind sentinel errors with errors.Is.
type ExtractionError struct {
	Kind     ExtractionFailure
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extracting %q (%s): %v", e.Filename, e.Kind, e.Err)
	}
	return fmt.Sprintf("extracting %q: %s", e.Filename, e.Kind)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel that corresponds to e.Kind.
func (e *ExtractionError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k ExtractionFailure) sentinel() error {
	switch k {
	case ExtractionUnsupportedType:
		return ErrExtractionUnsupported
	case ExtractionEmptyContent:
		return ErrExtractionEmpty
	case ExtractionDecodeFailure:
		return ErrExtractionDecode
	case ExtractionReadFailure:
		return ErrExtractionRead
	}
	return nil
}
