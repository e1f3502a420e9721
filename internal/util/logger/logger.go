package logger

import (
	"log/slog"
	"os"
	"sync"

	"novusfiles-backend/internal/config"
)

var (
	once     sync.Once
	instance *slog.Logger
)

func GetLogger() *slog.Logger {
	once.Do(func() {
		env := config.GetEnv()

		stdoutHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLevel(env.LogLevel),
		})

		var fileWriter *FileWriter
		if env.LogFile != "" {
			writer, err := NewFileWriter(env.LogFile)
			if err != nil {
				// stdout logging still works, report and continue
				slog.New(stdoutHandler).
					Error("Failed to open log file, file logging disabled", "path", env.LogFile, "error", err)
			} else {
				fileWriter = writer
			}
		}

		instance = slog.New(NewMultiHandler(stdoutHandler, fileWriter))
	})

	return instance
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
