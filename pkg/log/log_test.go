package log

import (
	"bytes"
	"io"
	stdlog "log"
	"strings"
	"testing"
)

func BenchmarkLogger_Info(b *testing.B) {
	l := New(FTimestamp, io.Discard, "test", 0)
	for i := 0; i < b.N; i++ {
		l.Info("test")
	}
}

func BenchmarkStdlogger(b *testing.B) {
	l := stdlog.New(io.Discard, "test", stdlog.Ltime)
	for i := 0; i < b.N; i++ {
		l.Print("test")
	}
}

func Test_levelToString(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  string
	}{
		{"testInfo", INFO, "INFO "},
		{"testError", ERROR, "ERROR"},
		{"testUnknown", 3, "?????"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := levelToString(tt.level); got != tt.want {
				t.Errorf("levelToString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogger_writeOut(t *testing.T) {
	tests := []struct {
		name     string
		minLevel int
		prefix   string
		write    func(l *Logger)
		want     string
	}{
		{"info", INFO, "", func(l *Logger) { l.Info("hello") }, "[INFO ] hello\n"},
		{"prefixed", TRACE, "MAIN", func(l *Logger) { l.Debugf("x=%d", 3) }, "[DEBUG] [MAIN] x=3\n"},
		{"filtered", WARN, "", func(l *Logger) { l.Info("hidden") }, ""},
		{"trailing newline trimmed", TRACE, "", func(l *Logger) { l.Warn("msg\r\n") }, "[WARN ] msg\n"},
		{"off", Off, "", func(l *Logger) { l.Error("nope") }, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			tt.write(New(0, buf, tt.prefix, tt.minLevel))

			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogger_SetTagRenderer(t *testing.T) {
	buf := new(bytes.Buffer)
	var seen string

	l := New(0, buf, "", TRACE).SetTagRenderer(func(s string) string {
		seen = s
		return "<" + s + ">"
	})
	l.Error("boom")

	if seen != "|R[ERROR]|n" {
		t.Errorf("renderer got %q", seen)
	}

	if got := buf.String(); got != "<|R[ERROR]|n> boom\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLogger_ShowFile(t *testing.T) {
	buf := new(bytes.Buffer)
	New(FShowFile, buf, "", TRACE).Info("where")

	if !strings.Contains(buf.String(), "log_test.go:") {
		t.Errorf("output %q does not name the calling file", buf.String())
	}
}

func TestLogger_Clone(t *testing.T) {
	buf := new(bytes.Buffer)
	base := New(0, buf, "BASE", TRACE)
	clone := base.Clone().SetPrefix("CLONE")

	base.Info("a")
	clone.Info("b")

	if got := buf.String(); got != "[INFO ] [BASE] a\n[INFO ] [CLONE] b\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLogger_Panicf(t *testing.T) {
	defer func() {
		if r := recover(); r != "bad 1" {
			t.Errorf("recovered %v, want %q", r, "bad 1")
		}
	}()

	New(0, io.Discard, "", TRACE).Panicf("bad %d", 1)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"trace", TRACE, false},
		{"DEBUG", DEBUG, false},
		{"", INFO, false},
		{"warning", WARN, false},
		{"off", Off, false},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %d, %v, want %d, err %t", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(PANIC) {
		t.Errorf("Discard logger should not be enabled at any level")
	}
}

func TestLogger_SetOutput(t *testing.T) {
	first, second := new(bytes.Buffer), new(bytes.Buffer)
	l := New(0, first, "", INFO)

	l.Info("a")
	l.SetOutput(second).Info("b")

	if first.String() != "[INFO ] a\n" || second.String() != "[INFO ] b\n" {
		t.Errorf("outputs = %q, %q", first.String(), second.String())
	}
}
