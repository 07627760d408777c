package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"mailtriage/internal/domain"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"content cannot be empty"`
	Code  string `json:"code" example:"EMPTY_CONTENT"`
}

// RespondOK sends a 200 response with data as the body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{Error: msg, Code: code})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrEmptyContent):
		return http.StatusBadRequest, "EMPTY_CONTENT", "content cannot be empty"
	case errors.Is(err, domain.ErrContentTooShort):
		return http.StatusBadRequest, "CONTENT_TOO_SHORT", "content is too short to classify"
	case errors.Is(err, domain.ErrInvalidSource):
		return http.StatusBadRequest, "INVALID_SOURCE", "invalid content source"
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "no file selected"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "file type not allowed; please upload a TXT or PDF file"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrExtractionUnsupported):
		return http.StatusBadRequest, "UNSUPPORTED_DOCUMENT", "document type is not supported for text extraction"
	case errors.Is(err, domain.ErrExtractionEmpty):
		return http.StatusUnprocessableEntity, "NO_TEXT_CONTENT", "no text content could be extracted from the file"
	case errors.Is(err, domain.ErrExtractionDecode):
		return http.StatusUnprocessableEntity, "UNREADABLE_DOCUMENT", "the file could not be decoded"
	case errors.Is(err, domain.ErrExtractionRead):
		return http.StatusBadRequest, "READ_FAILED", "the uploaded file could not be read"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "failed to store the uploaded file"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
// Details of 5xx errors are logged, never returned.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Error().Err(err).Interface("request_id", requestID).Msg("internal error")
	}
	RespondError(c, status, code, msg)
}
