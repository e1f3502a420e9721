package system_healthcheck

import (
	"errors"
	"os"
	"path/filepath"

	"novusfiles-backend/internal/config"
	"novusfiles-backend/internal/storage"

	"github.com/google/uuid"
)

type HealthcheckService struct{}

func (s *HealthcheckService) IsHealthy() error {
	db := storage.GetDb()
	if err := db.Raw("SELECT 1").Error; err != nil {
		return errors.New("cannot connect to the database")
	}

	if err := s.checkUploadDirWritable(); err != nil {
		return errors.New("upload directory is not writable")
	}

	return nil
}

func (s *HealthcheckService) checkUploadDirWritable() error {
	uploadDir := config.GetEnv().UploadDir

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return err
	}

	probe := filepath.Join(uploadDir, ".healthcheck-"+uuid.New().String())
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}

	return os.Remove(probe)
}
