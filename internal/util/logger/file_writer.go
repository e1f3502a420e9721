package logger

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// FileWriter appends log records as JSON lines to a single file.
// Writes are serialized; a failed write is dropped rather than
// propagated, stdout remains the source of truth.
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
}

func NewFileWriter(path string) (*FileWriter, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	return &FileWriter{file: file}, nil
}

func (w *FileWriter) Write(level, message string, attrs map[string]interface{}) {
	entry := map[string]interface{}{
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
		"level":   level,
		"message": message,
	}
	for key, value := range attrs {
		entry[key] = value
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	_, _ = w.file.Write(append(line, '\n'))
}

func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.file.Close()
}
