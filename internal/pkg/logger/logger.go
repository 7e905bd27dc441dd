package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New строит zerolog.Logger по уровню и формату из конфигурации.
func New(out io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("неподдерживаемый уровень логирования: %s", level)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	switch format {
	case "json":
	case "text":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("неподдерживаемый формат логов: %s", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
