package models

// UploadKind identifies what an upload imported.
type UploadKind string

const (
	UploadKindSecurities UploadKind = "securities"
	UploadKindYieldCurve UploadKind = "yield_curve"
)

// UploadStatus summarises the outcome of an upload.
type UploadStatus string

const (
	UploadStatusSuccess UploadStatus = "success"
	UploadStatusPartial UploadStatus = "partial"
	UploadStatusFailed  UploadStatus = "failed"
)

// UploadHistory records each catalog import or curve upload.
type UploadHistory struct {
	Base
	Kind                 UploadKind   `gorm:"size:16;not null;index" json:"kind"`
	Filename             string       `json:"filename"`
	SecuritiesAdded      int          `json:"securities_added"`
	SecuritiesUpdated    int          `json:"securities_updated"`
	SecuritiesDeprecated int          `json:"securities_deprecated"`
	TotalRecords         int          `json:"total_records"`
	FailedRecords        int          `json:"failed_records"`
	Status               UploadStatus `gorm:"size:16;not null" json:"status"`
	ErrorMessage         string       `json:"error_message,omitempty"`
	DurationMS           int64        `json:"duration_ms"`
}
