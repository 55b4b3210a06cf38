package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
		Level:           level,
	})
}

// stage times one step of a command. Fields given to newStage are repeated
// on the completion line.
type stage struct {
	logger *log.Logger
	name   string
	fields []any
	start  time.Time
}

func newStage(l *log.Logger, name string, fields ...any) *stage {
	l.Debug(name, fields...)
	return &stage{logger: l, name: name, fields: fields, start: time.Now()}
}

// done logs the stage at info level with its elapsed time and any extra
// key/value pairs, e.g. "resolved cards=9 cached=3 took=2ms".
func (s *stage) done(fields ...any) time.Duration {
	took := time.Since(s.start).Round(time.Millisecond)
	kv := append(append(append([]any{}, s.fields...), fields...), "took", took)
	s.logger.Info(s.name, kv...)
	return took
}
