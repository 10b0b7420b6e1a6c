package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/ingest"
	"umoabonds/internal/models"
	"umoabonds/internal/services"
)

// ImportHandler handles catalog imports and the upload history.
type ImportHandler struct {
	securityService services.SecurityServicer
	historyService  services.UploadHistoryServicer
	maxUploadBytes  int64
}

// NewImportHandler creates a new ImportHandler. maxUploadBytes <= 0 disables
// the size limit.
func NewImportHandler(securityService services.SecurityServicer, historyService services.UploadHistoryServicer, maxUploadBytes int64) *ImportHandler {
	return &ImportHandler{
		securityService: securityService,
		historyService:  historyService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// ImportSecurities handles a securities CSV upload.
// @Summary     Import securities
// @Description Upsert the securities of a CSV file by ISIN. Securities past maturity are marked matured first.
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Securities CSV"
// @Success     200 {object} services.ImportResult "Import summary"
// @Failure     400 {object} ErrorResponse "Invalid or empty file"
// @Failure     413 {object} ErrorResponse "File too large"
// @Router      /securities/import [post]
func (h *ImportHandler) ImportSecurities(c *gin.Context) {
	filename, body, err := readCSVUpload(c, h.maxUploadBytes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := ingest.ParseSecurities(body)
	if err != nil {
		h.historyService.Record(c.Request.Context(), &models.UploadHistory{
			Kind:         models.UploadKindSecurities,
			Filename:     filename,
			Status:       models.UploadStatusFailed,
			ErrorMessage: err.Error(),
		})
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidImportFile, err.Error()))
		return
	}

	result, err := h.securityService.ImportSecurities(c.Request.Context(), filename, rows)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListUploads handles the upload history.
// @Summary     Upload history
// @Description Get the most recent security and yield curve uploads
// @Tags        admin
// @Produce     json
// @Param       limit query int false "Number of entries (default 20, max 100)"
// @Success     200 {object} map[string][]models.UploadHistory "Uploads"
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Router      /uploads [get]
func (h *ImportHandler) ListUploads(c *gin.Context) {
	limit, err := parseLimit(c, "limit")
	if err != nil {
		respondWithError(c, err)
		return
	}

	uploads, err := h.historyService.List(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if uploads == nil {
		uploads = []models.UploadHistory{}
	}

	c.JSON(http.StatusOK, gin.H{"uploads": uploads})
}
