package domain

import "strings"

// Category is the closed set of triage outcomes for an email.
type Category string

const (
	CategoryRequiresAction Category = "REQUIRES_ACTION"
	CategoryNoActionNeeded Category = "NO_ACTION_NEEDED"
)

// Categories lists every valid Category in display order.
var Categories = []Category{CategoryRequiresAction, CategoryNoActionNeeded}

// IsValid reports whether c is one of the enumerated categories.
func (c Category) IsValid() bool {
	return c == CategoryRequiresAction || c == CategoryNoActionNeeded
}

// ParseCategory matches a loosely formatted label against the known categories.
// Case and surrounding whitespace are ignored; spaces and hyphens count as underscores.
// ok is false for anything else.
func ParseCategory(raw string) (c Category, ok bool) {
	label := strings.ToUpper(strings.TrimSpace(raw))
	label = strings.NewReplacer(" ", "_", "-", "_").Replace(label)
	switch Category(label) {
	case CategoryRequiresAction:
		return CategoryRequiresAction, true
	case CategoryNoActionNeeded:
		return CategoryNoActionNeeded, true
	}
	return "", false
}

// Source records how a piece of content entered the system.
type Source string

const (
	SourceText Source = "text"
	SourceFile Source = "file"
	SourceAPI  Source = "api"
)

// IsValid reports whether s is a known source.
func (s Source) IsValid() bool {
	switch s {
	case SourceText, SourceFile, SourceAPI:
		return true
	}
	return false
}

// FileType is a document type the extractor understands.
type FileType string

const (
	FileTypeTXT FileType = "txt"
	FileTypePDF FileType = "pdf"
)

// FallbackReason explains why a pipeline stage returned its default value
// instead of model output. The empty value means no fallback happened.
type FallbackReason string

const (
	FallbackNone              FallbackReason = ""
	FallbackTransportError    FallbackReason = "transport_error"
	FallbackTimeout           FallbackReason = "timeout"
	FallbackRateLimited       FallbackReason = "rate_limited"
	FallbackEmptyResponse     FallbackReason = "empty_response"
	FallbackMalformedResponse FallbackReason = "malformed_response"
	FallbackUnknownLabel      FallbackReason = "unknown_label"
)

// ExtractionFailure classifies why a document produced no text.
type ExtractionFailure string

const (
	ExtractionUnsupportedType ExtractionFailure = "unsupported_type"
	ExtractionEmptyContent    ExtractionFailure = "empty_content"
	ExtractionDecodeFailure   ExtractionFailure = "decode_failure"
	ExtractionReadFailure     ExtractionFailure = "read_failure"
)
