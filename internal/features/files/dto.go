package files

import (
	"time"

	"github.com/google/uuid"
)

type FileRecordDTO struct {
	ID               uuid.UUID `json:"id"`
	OriginalFilename string    `json:"originalFilename"`
	SizeBytes        int64     `json:"sizeBytes"`
	SizeFormatted    string    `json:"sizeFormatted"`
	MimeType         string    `json:"mimeType"`
	DownloadCount    int64     `json:"downloadCount"`
	CreatedAt        time.Time `json:"createdAt"`
	DownloadLink     string    `json:"downloadLink"`
}

type FileInfoResponseDTO struct {
	Filename      string    `json:"filename"`
	SizeBytes     int64     `json:"sizeBytes"`
	SizeFormatted string    `json:"sizeFormatted"`
	MimeType      string    `json:"mimeType"`
	UploadedAt    time.Time `json:"uploadedAt"`
	DownloadCount int64     `json:"downloadCount"`
}
