package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "umoabonds/internal/errors"
	"umoabonds/internal/logger"
	"umoabonds/internal/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// uploadHistoryService records catalog imports and curve uploads.
type uploadHistoryService struct {
	db *gorm.DB
}

// NewUploadHistoryService creates a new UploadHistoryServicer.
func NewUploadHistoryService(db *gorm.DB) UploadHistoryServicer {
	return &uploadHistoryService{db: db}
}

// Record stores an upload entry. Errors are logged but never propagate
// to avoid failing an import that already succeeded.
func (s *uploadHistoryService) Record(ctx context.Context, entry *models.UploadHistory) {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to record upload history",
			"error", err,
			"kind", entry.Kind,
			"filename", entry.Filename,
			"status", entry.Status,
		)
	}
}

// List returns the most recent uploads first. limit is clamped to [1, 100]
// and defaults to 20.
func (s *uploadHistoryService) List(ctx context.Context, limit int) ([]models.UploadHistory, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	var entries []models.UploadHistory
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
