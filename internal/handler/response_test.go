package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"mailtriage/internal/domain"
	"mailtriage/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrEmptyContent, http.StatusBadRequest, "EMPTY_CONTENT"},
		{domain.ErrContentTooShort, http.StatusBadRequest, "CONTENT_TOO_SHORT"},
		{domain.ErrMissingFile, http.StatusBadRequest, "MISSING_FILE"},
		{fmt.Errorf("staging: %w", domain.ErrFileTooLarge), http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ExtractionFailed(domain.ExtractionUnsupportedType, nil).Error("a.doc"), http.StatusBadRequest, "UNSUPPORTED_DOCUMENT"},
		{domain.ExtractionFailed(domain.ExtractionReadFailure, errors.New("eof")).Error("a.txt"), http.StatusBadRequest, "READ_FAILED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}
