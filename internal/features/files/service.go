package files

import (
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"

	"novusfiles-backend/internal/config"
	users_models "novusfiles-backend/internal/features/users/models"
	cache_utils "novusfiles-backend/internal/util/cache"
	"novusfiles-backend/internal/util/encryption"

	"github.com/google/uuid"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrNotFileOwner = errors.New("you do not own this file")
	ErrNoFile       = errors.New("no file provided")
)

type FileService struct {
	fileRecordRepository *FileRecordRepository
	fileStore            *FileStore
	recordByTokenCache   *cache_utils.CacheUtil[FileRecord]
	logger               *slog.Logger
}

// Upload stores the blob under a fresh opaque name, then creates the
// metadata record. The blob is written first so a failed request never
// leaves a record pointing at missing bytes; if the record insert fails
// the blob is removed again.
func (s *FileService) Upload(
	user *users_models.User,
	fileHeader *multipart.FileHeader,
) (*FileRecordDTO, error) {
	originalFilename := filepath.Base(fileHeader.Filename)
	if originalFilename == "" || originalFilename == "." || originalFilename == "/" {
		return nil, ErrNoFile
	}

	source, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer source.Close()

	storedName := uuid.New().String() + filepath.Ext(originalFilename)

	sizeBytes, fileHash, err := s.fileStore.Save(storedName, source)
	if err != nil {
		return nil, err
	}

	record := &FileRecord{
		OwnerUserID:      user.ID,
		StoredName:       storedName,
		OriginalFilename: originalFilename,
		SizeBytes:        sizeBytes,
		MimeType:         detectMimeType(fileHeader, originalFilename),
		FileHash:         fileHash,
		DownloadToken:    encryption.GenerateSecureToken(),
	}

	if err := s.fileRecordRepository.Create(record); err != nil {
		if removeErr := s.fileStore.Delete(storedName); removeErr != nil {
			s.logger.Error(
				"Failed to remove blob after record creation failure",
				"storedName", storedName,
				"error", removeErr,
			)
		}
		return nil, err
	}

	s.logger.Info(
		"File uploaded",
		"fileId", record.ID,
		"userId", user.ID,
		"filename", originalFilename,
		"size", FormatFileSize(sizeBytes),
	)

	dto := s.toDTO(record)
	return &dto, nil
}

func (s *FileService) ListFiles(user *users_models.User) ([]FileRecordDTO, error) {
	records, err := s.fileRecordRepository.ListByOwner(user.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]FileRecordDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, s.toDTO(&records[i]))
	}

	return dtos, nil
}

// DeleteFile removes the record, then the bytes. A crash between the two
// steps can orphan a blob on disk; a failed byte deletion is logged and
// not surfaced since the record is already gone.
func (s *FileService) DeleteFile(user *users_models.User, fileID uuid.UUID) error {
	record, err := s.fileRecordRepository.FindByID(fileID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrFileNotFound
	}
	if record.OwnerUserID != user.ID {
		return ErrNotFileOwner
	}

	if err := s.fileRecordRepository.Delete(record.ID); err != nil {
		return err
	}

	s.recordByTokenCache.Invalidate(record.DownloadToken)

	if err := s.fileStore.Delete(record.StoredName); err != nil {
		s.logger.Error(
			"Failed to delete blob for removed file record",
			"fileId", record.ID,
			"storedName", record.StoredName,
			"error", err,
		)
	}

	s.logger.Info("File deleted", "fileId", record.ID, "userId", user.ID)
	return nil
}

// GetByDownloadToken is the public lookup path, no authentication
// involved. Hits the cache first, falls back to the database.
func (s *FileService) GetByDownloadToken(token string) (*FileRecord, error) {
	if cached := s.recordByTokenCache.Get(token); cached != nil {
		return cached, nil
	}

	record, err := s.fileRecordRepository.FindByDownloadToken(token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrFileNotFound
	}

	s.recordByTokenCache.Set(token, record)
	return record, nil
}

// RegisterDownload counts one successful retrieval. The cached record is
// dropped so file-info reads do not serve a stale counter.
func (s *FileService) RegisterDownload(record *FileRecord) {
	if err := s.fileRecordRepository.IncrementDownloadCount(record.DownloadToken); err != nil {
		s.logger.Error(
			"Failed to increment download count",
			"fileId", record.ID,
			"error", err,
		)
		return
	}

	s.recordByTokenCache.Invalidate(record.DownloadToken)
}

func (s *FileService) GetFileInfo(token string) (*FileInfoResponseDTO, error) {
	record, err := s.GetByDownloadToken(token)
	if err != nil {
		return nil, err
	}

	return &FileInfoResponseDTO{
		Filename:      record.OriginalFilename,
		SizeBytes:     record.SizeBytes,
		SizeFormatted: FormatFileSize(record.SizeBytes),
		MimeType:      record.MimeType,
		UploadedAt:    record.CreatedAt,
		DownloadCount: record.DownloadCount,
	}, nil
}

func (s *FileService) OpenBlob(record *FileRecord) (*os.File, error) {
	return s.fileStore.Open(record.StoredName)
}

func (s *FileService) toDTO(record *FileRecord) FileRecordDTO {
	return FileRecordDTO{
		ID:               record.ID,
		OriginalFilename: record.OriginalFilename,
		SizeBytes:        record.SizeBytes,
		SizeFormatted:    FormatFileSize(record.SizeBytes),
		MimeType:         record.MimeType,
		DownloadCount:    record.DownloadCount,
		CreatedAt:        record.CreatedAt,
		DownloadLink:     BuildDownloadLink(record.DownloadToken),
	}
}

func BuildDownloadLink(token string) string {
	return config.GetEnv().BaseURL + "/api/v1/download/" + token
}

func detectMimeType(fileHeader *multipart.FileHeader, originalFilename string) string {
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		return contentType
	}

	if byExtension := mime.TypeByExtension(filepath.Ext(originalFilename)); byExtension != "" {
		return byExtension
	}

	return "application/octet-stream"
}

func FormatFileSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(sizeBytes)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f%s", size, units[unit])
}
