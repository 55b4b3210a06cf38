package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"info at warn", log.WarnLevel, func(l *log.Logger) { l.Info("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestStage(t *testing.T) {
	var buf bytes.Buffer
	st := newStage(newLogger(&buf, log.InfoLevel), "resolve", "deck", "front-desk.json")
	if buf.Len() != 0 {
		t.Fatalf("stage start should log at debug only, got %q", buf.String())
	}

	if took := st.done("cards", 9); took < 0 {
		t.Errorf("done() = %v, want non-negative", took)
	}

	out := buf.String()
	for _, want := range []string{"resolve", "deck=front-desk.json", "cards=9", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestStageDebugStart(t *testing.T) {
	var buf bytes.Buffer
	newStage(newLogger(&buf, log.DebugLevel), "render", "formats", 2)
	if !strings.Contains(buf.String(), "formats=2") {
		t.Errorf("debug start line missing fields: %q", buf.String())
	}
}
