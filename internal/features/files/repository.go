package files

import (
	"time"

	"novusfiles-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileRecordRepository struct{}

func (r *FileRecordRepository) Create(record *FileRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(record).Error
}

func (r *FileRecordRepository) FindByID(id uuid.UUID) (*FileRecord, error) {
	var record FileRecord

	err := storage.GetDb().
		Where("id = ?", id).
		First(&record).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (r *FileRecordRepository) FindByDownloadToken(token string) (*FileRecord, error) {
	var record FileRecord

	err := storage.GetDb().
		Where("download_token = ?", token).
		First(&record).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (r *FileRecordRepository) ListByOwner(ownerUserID uuid.UUID) ([]FileRecord, error) {
	var records []FileRecord

	err := storage.GetDb().
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at DESC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *FileRecordRepository) Delete(id uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", id).
		Delete(&FileRecord{}).Error
}

// IncrementDownloadCount bumps the counter in a single UPDATE so
// concurrent downloads never lose increments.
func (r *FileRecordRepository) IncrementDownloadCount(token string) error {
	return storage.GetDb().Model(&FileRecord{}).
		Where("download_token = ?", token).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
}
