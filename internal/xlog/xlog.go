// Package xlog builds the structured logger used by the config package to
// report resolved filter parameters before construction. Adapted from the
// teacher kit's xlogger package; qht's own packages stay allocation-free
// and do not log on the Lookup/Insert hot path.
package xlog

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
)

// Config controls the logger New builds.
type Config struct {
	Level     string
	LogType   string
	AddSource bool
}

// New builds a slog.Logger per conf.
func New(conf Config) *slog.Logger {
	sourcePath := detectSourcePath()

	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: newReplaceAttr(sourcePath),
	}

	return slog.New(getHandler(conf.LogType, opts))
}

// detectSourcePath extracts the module path from build info, used to trim
// absolute source paths out of logged %s:%d locations.
func detectSourcePath() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		return ""
	}
	return info.Main.Path
}

func getLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getHandler(logType string, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(os.Stdout, opts)
	default:
		return slog.NewTextHandler(os.Stdout, opts)
	}
}

func newReplaceAttr(sourcePath string) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}
		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		sourceFile := fmt.Sprintf("%s:%d", source.File, source.Line)
		if len(sourcePath) > 0 {
			if index := strings.Index(source.File, sourcePath); index >= 0 {
				sourceFile = fmt.Sprintf("%s:%d", source.File[index+len(sourcePath)+1:], source.Line)
			}
		}
		return slog.String(slog.SourceKey, sourceFile)
	}
}
