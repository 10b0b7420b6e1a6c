package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "umoabonds/internal/errors"
)

// readCSVUpload returns the name and content of the multipart "file" field.
// Bodies larger than maxBytes are rejected with PAYLOAD_TOO_LARGE.
func readCSVUpload(c *gin.Context, maxBytes int64) (string, io.Reader, error) {
	if maxBytes > 0 {
		if c.Request.ContentLength > maxBytes {
			return "", nil, apperrors.ErrPayloadTooBig
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	header, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			return "", nil, apperrors.ErrPayloadTooBig
		}
		return "", nil, apperrors.WithMessage(apperrors.ErrInvalidImportFile, `multipart field "file" is required`)
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		return "", nil, apperrors.WithMessage(apperrors.ErrInvalidImportFile, "only .csv files are accepted")
	}

	f, err := header.Open()
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return filepath.Base(header.Filename), bytes.NewReader(data), nil
}
