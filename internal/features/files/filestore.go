package files

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"

	"novusfiles-backend/internal/config"
)

// FileStore keeps uploaded blobs on local disk under their opaque stored
// names. Stored names are always server-generated, user-supplied
// filenames never touch the filesystem.
type FileStore struct{}

func (fs *FileStore) baseDir() string {
	return config.GetEnv().UploadDir
}

// Save writes the reader's content under storedName and returns the byte
// count and the SHA-256 hex digest. A partially written blob is removed
// on failure.
func (fs *FileStore) Save(storedName string, reader io.Reader) (int64, string, error) {
	if err := os.MkdirAll(fs.baseDir(), 0o755); err != nil {
		return 0, "", err
	}

	path := filepath.Join(fs.baseDir(), storedName)

	file, err := os.Create(path)
	if err != nil {
		return 0, "", err
	}

	hash := sha256.New()
	written, err := io.Copy(io.MultiWriter(file, hash), reader)
	if err != nil {
		file.Close()
		os.Remove(path)
		return 0, "", err
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return 0, "", err
	}

	return written, hex.EncodeToString(hash.Sum(nil)), nil
}

func (fs *FileStore) Open(storedName string) (*os.File, error) {
	return os.Open(filepath.Join(fs.baseDir(), storedName))
}

func (fs *FileStore) Delete(storedName string) error {
	err := os.Remove(filepath.Join(fs.baseDir(), storedName))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
