package adapter

import (
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// restyLogger routes resty's internal messages into the client log file
// instead of stderr, which belongs to the TUI.
type restyLogger struct {
	l *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error().Str("func", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn().Str("func", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug().Str("func", "resty").Msgf(strings.TrimSpace(format), v...)
}
