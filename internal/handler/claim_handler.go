package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"superclaims/internal/config"
	"superclaims/internal/domain"
	"superclaims/internal/service"
)

// ClaimHandler handles claim processing endpoints.
type ClaimHandler struct {
	claimService service.ClaimService
	upload       config.UploadConfig
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claimService service.ClaimService, upload config.UploadConfig) *ClaimHandler {
	return &ClaimHandler{claimService: claimService, upload: upload}
}

// Process handles POST /process-claim. It accepts multiple PDF files
// under the multipart field "files" and returns the per-document
// results, validation findings, and final claim decision.
func (h *ClaimHandler) Process(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "multipart form with a files field is required")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		HandleError(c, domain.ErrEmptyBatch)
		return
	}
	if h.upload.MaxFiles > 0 && len(files) > h.upload.MaxFiles {
		RespondError(c, http.StatusBadRequest, "TOO_MANY_FILES", "too many files in one claim")
		return
	}

	docs := make([]domain.UploadedDocument, 0, len(files))
	for _, fh := range files {
		doc, err := h.readUpload(fh)
		if err != nil {
			HandleError(c, err)
			return
		}
		docs = append(docs, doc)
	}

	result, err := h.claimService.ProcessClaim(c.Request.Context(), docs)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// readUpload validates one multipart file header and reads its content.
func (h *ClaimHandler) readUpload(fh *multipart.FileHeader) (domain.UploadedDocument, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return domain.UploadedDocument{}, domain.ErrUnsupportedFileType
	}
	if h.upload.MaxFileSizeMB > 0 && fh.Size > h.upload.MaxFileSizeMB*1024*1024 {
		return domain.UploadedDocument{}, domain.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return domain.UploadedDocument{}, err
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.UploadedDocument{}, err
	}

	return domain.UploadedDocument{
		Filename: fh.Filename,
		Content:  content,
	}, nil
}
