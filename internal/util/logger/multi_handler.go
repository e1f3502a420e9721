package logger

import (
	"context"
	"log/slog"
)

type MultiHandler struct {
	stdoutHandler slog.Handler
	fileWriter    *FileWriter
}

func NewMultiHandler(
	stdoutHandler slog.Handler,
	fileWriter *FileWriter,
) *MultiHandler {
	return &MultiHandler{
		stdoutHandler: stdoutHandler,
		fileWriter:    fileWriter,
	}
}

func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.stdoutHandler.Enabled(ctx, level)
}

func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	// Send to stdout handler
	if err := h.stdoutHandler.Handle(ctx, record); err != nil {
		return err
	}

	// Send to log file if configured
	if h.fileWriter != nil {
		attrs := make(map[string]interface{})
		record.Attrs(func(a slog.Attr) bool {
			attrs[a.Key] = a.Value.Any()
			return true
		})

		h.fileWriter.Write(record.Level.String(), record.Message, attrs)
	}

	return nil
}

func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MultiHandler{
		stdoutHandler: h.stdoutHandler.WithAttrs(attrs),
		fileWriter:    h.fileWriter,
	}
}

func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return &MultiHandler{
		stdoutHandler: h.stdoutHandler.WithGroup(name),
		fileWriter:    h.fileWriter,
	}
}
