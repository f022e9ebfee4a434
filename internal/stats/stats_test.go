package stats

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MinaswanNakamoto/pipetext/internal/version"
)

func TestCollector(t *testing.T) {
	c := New()
	c.Input("|rhéllo")
	c.Input("")

	var buf bytes.Buffer

	w := c.Writer(&buf)
	if _, err := w.Write([]byte("\x1b[0;31mhéllo")); err != nil {
		t.Fatal(err)
	}

	c.Output(-5)

	renders, runes, written := c.Counts()
	if renders != 2 || runes != 7 || written != 13 {
		t.Errorf("Counts() = %d, %d, %d, want 2, 7, 13", renders, runes, written)
	}

	if buf.String() != "\x1b[0;31mhéllo" {
		t.Errorf("Writer() did not pass writes through, got %q", buf.String())
	}
}

func TestReportString(t *testing.T) {
	r := Report{
		Renders:       1200,
		Runes:         1024,
		Bytes:         2048,
		Uptime:        1500 * time.Millisecond,
		ProcessMemory: 8 << 20,
		Goroutines:    3,
		GoVersion:     "go1.24.0",
		CPUPercent:    12.5,
		HostUsed:      1 << 30,
		HostSize:      4 << 30,
		HostPercent:   25,
	}

	want := "pipetext " + version.Version + ": 1,200 renders, 1,024 runes in, 2.0 KiB out, up 1.5s (2.0 bytes per rune)" +
		" | process 8.0 MiB, 3 goroutines, go1.24.0 | host cpu 12.50%, memory 1.0 GiB/4.0 GiB (25.00%)"
	if got := r.String(); got != want {
		t.Errorf("Report.String() = %q, want %q", got, want)
	}
}

func TestReportWithoutHostStats(t *testing.T) {
	r := Report{CPUErr: errors.New("no /proc"), HostErr: errors.New("no /proc")}

	got := r.String()
	if !strings.Contains(got, "host cpu unknown, memory unknown") {
		t.Errorf("Report.String() = %q, want unknown host values", got)
	}

	if strings.Contains(got, "per rune") {
		t.Errorf("Report.String() = %q, want no ratio without input", got)
	}
}

func TestFormat(t *testing.T) {
	c := New()
	c.Input("ab")

	r := c.Report()
	if r.Renders != 1 || r.Runes != 2 || r.GoVersion == "" {
		t.Errorf("Report() = %+v, want one render of two runes and a Go version", r)
	}

	if got := c.Format(); !strings.HasPrefix(got, "pipetext ") || !strings.Contains(got, "1 renders, 2 runes in") {
		t.Errorf("Format() = %q", got)
	}
}
