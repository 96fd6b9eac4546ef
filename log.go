package eventsystem

import (
	"io"
	"log/slog"
	"strings"
)

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel maps a level name ("debug", "info", "warn", "error") to a
// slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	if level, ok := levelNames[strings.ToLower(raw)]; ok {
		return level
	}
	return slog.LevelInfo
}

// NewLogger creates a JSON logger writing to w at the named level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lv := &slog.LevelVar{}
	lv.Set(ParseLevel(level))
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv}))
}
