package files

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is the metadata row for one uploaded blob. The stored name
// and the download token are both opaque: the stored name keys the bytes
// on disk, the download token alone grants public retrieval. Ownership
// gates listing and deletion, never downloads.
type FileRecord struct {
	ID               uuid.UUID `json:"id"               gorm:"column:id;primaryKey"`
	OwnerUserID      uuid.UUID `json:"ownerUserId"      gorm:"column:owner_user_id;not null;index"`
	StoredName       string    `json:"-"                gorm:"column:stored_name;uniqueIndex;not null"`
	OriginalFilename string    `json:"originalFilename" gorm:"column:original_filename;not null"`
	SizeBytes        int64     `json:"sizeBytes"        gorm:"column:size_bytes;not null"`
	MimeType         string    `json:"mimeType"         gorm:"column:mime_type;not null"`
	FileHash         string    `json:"fileHash"         gorm:"column:file_hash;not null"`
	DownloadToken    string    `json:"-"                gorm:"column:download_token;uniqueIndex;not null"`
	DownloadCount    int64     `json:"downloadCount"    gorm:"column:download_count;not null;default:0"`
	CreatedAt        time.Time `json:"createdAt"        gorm:"column:created_at;not null"`
}

func (FileRecord) TableName() string {
	return "file_records"
}
