// Package report exports batch classification results as CSV or XLSX.
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"mailtriage/internal/service"
)

// columns defines the header row shared by every format.
var columns = []string{
	"File",
	"Status",
	"Category",
	"Reasoning",
	"Suggested Response",
	"Char Count",
	"Word Count",
	"Error",
}

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// itemToRow converts a batch item to a row. Failed items only carry the file,
// status and error columns.
func itemToRow(item *service.BatchItem) []string {
	row := make([]string, len(columns))
	row[0] = displayName(item)

	if item.Err != nil || item.Result == nil {
		row[1] = statusFailed
		if item.Err != nil {
			row[7] = item.Err.Error()
		}
		return row
	}

	r := item.Result
	row[1] = statusOK
	row[2] = string(r.Category)
	row[3] = r.Reasoning
	row[4] = r.SuggestedResponse
	row[5] = strconv.Itoa(r.CharCount)
	row[6] = strconv.Itoa(r.WordCount)
	return row
}

func displayName(item *service.BatchItem) string {
	if item.Result != nil && item.Result.Filename != nil {
		return *item.Result.Filename
	}
	return item.Path
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename replaces characters outside [a-zA-Z0-9_-] with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "report"
	}
	return s
}

// BuildFilename returns {sanitized_prefix}_{YYYY-MM-DD}.{ext}.
func BuildFilename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(prefix), now.Format("2006-01-02"), strings.TrimPrefix(ext, "."))
}
