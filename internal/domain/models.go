package domain

import (
	"strings"
	"unicode/utf8"
)

// ClassificationRequest is the input to the triage pipeline.
// Build it with NewClassificationRequest; the fields cannot change afterwards.
type ClassificationRequest struct {
	content  string
	source   Source
	filename string
}

// NewClassificationRequest validates and builds a ClassificationRequest.
// content is trimmed; an empty filename means none was supplied.
func NewClassificationRequest(content string, source Source, filename string) (*ClassificationRequest, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if !source.IsValid() {
		return nil, ErrInvalidSource
	}
	return &ClassificationRequest{
		content:  content,
		source:   source,
		filename: strings.TrimSpace(filename),
	}, nil
}

func (r *ClassificationRequest) Content() string { return r.content }

func (r *ClassificationRequest) Source() Source { return r.source }

// Filename returns the originating file name and whether one was set.
func (r *ClassificationRequest) Filename() (string, bool) {
	return r.filename, r.filename != ""
}

// ClassificationResult is the pipeline output. The JSON field names are part of
// the public API.
type ClassificationResult struct {
	Category          Category `json:"category"`
	Reasoning         string   `json:"reasoning"`
	SuggestedResponse string   `json:"suggested_response"`
	OriginalContent   string   `json:"original_content"`
	CharCount         int      `json:"char_count"`
	WordCount         int      `json:"word_count"`
	Filename          *string  `json:"filename"`
}

// ToMap flattens the result into a key-value map using the JSON field names.
func (r *ClassificationResult) ToMap() map[string]interface{} {
	var filename interface{}
	if r.Filename != nil {
		filename = *r.Filename
	}
	return map[string]interface{}{
		"category":           string(r.Category),
		"reasoning":          r.Reasoning,
		"suggested_response": r.SuggestedResponse,
		"original_content":   r.OriginalContent,
		"char_count":         r.CharCount,
		"word_count":         r.WordCount,
		"filename":           filename,
	}
}

// ContentStats returns the character (code point) and whitespace-delimited word
// counts of content.
func ContentStats(content string) (chars, words int) {
	return utf8.RuneCountInString(content), len(strings.Fields(content))
}

// ExtractionOutcome is the tagged result of turning a stored document into text.
// Exactly one of Text (on success) or Failure is meaningful.
type ExtractionOutcome struct {
	Text    string
	Failure ExtractionFailure
	Err     error
}

// ExtractedText builds a successful outcome.
func ExtractedText(text string) ExtractionOutcome {
	return ExtractionOutcome{Text: text}
}

// ExtractionFailed builds a failed outcome. err carries diagnostics and may be nil.
func ExtractionFailed(kind ExtractionFailure, err error) ExtractionOutcome {
	return ExtractionOutcome{Failure: kind, Err: err}
}

// OK reports whether extraction produced text.
func (o ExtractionOutcome) OK() bool {
	return o.Failure == ""
}

// Error converts a failed outcome into an *ExtractionError; it returns nil on success.
func (o ExtractionOutcome) Error(filename string) error {
	if o.OK() {
		return nil
	}
	return &ExtractionError{Kind: o.Failure, Filename: filename, Err: o.Err}
}

// ClassificationOutcome is what the classification stage returns. Fallback is
// set whenever Category or Reasoning did not come straight from the model.
type ClassificationOutcome struct {
	Category  Category
	Reasoning string
	Fallback  FallbackReason
}

// UsedFallback reports whether the outcome deviates from the model's answer.
func (o ClassificationOutcome) UsedFallback() bool {
	return o.Fallback != FallbackNone
}

// DraftOutcome is what the reply drafting stage returns.
type DraftOutcome struct {
	Text     string
	Fallback FallbackReason
}

// UsedFallback reports whether Text is the fixed fallback reply.
func (o DraftOutcome) UsedFallback() bool {
	return o.Fallback != FallbackNone
}
