// Package logging builds the zerolog logger used by the client and its tools.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/elliotmr/wlclient/internal/config"
)

// New builds a logger writing to w and installs it as the global logger.
func New(cfg config.Log, w io.Writer, app string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	if app != "" {
		ctx = ctx.Str("app", app)
	}
	logger := ctx.Logger()
	log.Logger = logger
	return logger
}

// ParseLevel maps a level name to a zerolog level. Besides the zerolog
// names it accepts wire, warning, off and none. Unknown names give info.
func ParseLevel(raw string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(raw))
	switch name {
	case "wire":
		name = zerolog.LevelTraceValue
	case "warning":
		name = zerolog.LevelWarnValue
	case "off", "none", "disable":
		name = "disabled"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// TB is the part of testing.TB the test logger needs.
type TB interface {
	zerolog.TestingLog
}

// ForTest returns a debug logger that writes through t.Log.
func ForTest(t TB) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}
