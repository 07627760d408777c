package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"mailtriage/internal/domain"
	"mailtriage/internal/service"
)

// ClassifyHandler handles the three classification entry points.
type ClassifyHandler struct {
	pipeline         service.PipelineService
	uploads          service.UploadService
	minContentLength int
}

// NewClassifyHandler creates a new ClassifyHandler.
func NewClassifyHandler(pipeline service.PipelineService, uploads service.UploadService, minContentLength int) *ClassifyHandler {
	return &ClassifyHandler{
		pipeline:         pipeline,
		uploads:          uploads,
		minContentLength: minContentLength,
	}
}

// ClassifyText handles POST /classify-text
// @Summary Classify pasted email text
// @Description Classifies the email and drafts a suggested reply
// @Tags classification
// @Accept json
// @Produce json
// @Param request body ClassifyTextRequest true "Email content"
// @Success 200 {object} ClassificationResponse
// @Failure 400 {object} ErrorResponse "Missing, empty or too short content"
// @Failure 500 {object} ErrorResponse
// @Router /classify-text [post]
func (h *ClassifyHandler) ClassifyText(c *gin.Context) {
	var req ClassifyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "content is required")
		return
	}
	h.classify(c, req.Content, domain.SourceText, "")
}

// Upload handles POST /upload
// @Summary Classify an uploaded email document
// @Description Extracts the text of a TXT or PDF file, then classifies it
// @Tags classification
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Email document (TXT or PDF)"
// @Success 200 {object} ClassificationResponse
// @Failure 400 {object} ErrorResponse "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 422 {object} ErrorResponse "No text could be extracted"
// @Failure 500 {object} ErrorResponse
// @Router /upload [post]
func (h *ClassifyHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isBodyTooLarge(err) {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	req, err := h.uploads.Ingest(c.Request.Context(), service.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	name, _ := req.Filename()
	h.classify(c, req.Content(), domain.SourceFile, name)
}

// ClassifyAPI handles POST /api/classify
// @Summary Classify email content programmatically
// @Description Accepts a JSON or form body with the content and an optional filename
// @Tags classification
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body ClassifyAPIRequest true "Email content"
// @Success 200 {object} ClassificationResponse
// @Failure 400 {object} ErrorResponse "Missing, empty or too short content"
// @Failure 500 {object} ErrorResponse
// @Router /api/classify [post]
func (h *ClassifyHandler) ClassifyAPI(c *gin.Context) {
	var req ClassifyAPIRequest
	var err error
	if c.ContentType() == binding.MIMEJSON {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindWith(&req, binding.Form)
	}
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "content is required")
		return
	}
	h.classify(c, req.Content, domain.SourceAPI, req.Filename)
}

func (h *ClassifyHandler) classify(c *gin.Context, content string, source domain.Source, filename string) {
	if err := service.RequireMinLength(content, h.minContentLength); err != nil {
		HandleError(c, err)
		return
	}
	req, err := domain.NewClassificationRequest(content, source, filename)
	if err != nil {
		HandleError(c, err)
		return
	}
	result, err := h.pipeline.Process(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
