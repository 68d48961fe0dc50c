package xlog

import "github.com/rs/zerolog"

// zerologAdapter wraps a zerolog.Logger to satisfy the Logger interface.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter adapts an existing zerolog.Logger for use with
// SetLogger. Typical wiring in cmd/expedicalc:
//
//	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	xlog.SetLogger(xlog.NewZerologAdapter(zlog))
func NewZerologAdapter(logger zerolog.Logger) Logger {
	return &zerologAdapter{logger: logger}
}

func (l *zerologAdapter) Debug(msg string, fields ...Field) {
	withFields(l.logger.Debug(), fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields ...Field) {
	withFields(l.logger.Info(), fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields ...Field) {
	withFields(l.logger.Warn(), fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields ...Field) {
	withFields(l.logger.Error(), fields).Msg(msg)
}

func withFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		e = e.Interface(f.Key, f.Value)
	}
	return e
}
