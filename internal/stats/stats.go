// Package stats keeps counters for a pipetext session and formats them along with host statistics
package stats

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/MinaswanNakamoto/pipetext/internal/version"
)

// Collector counts renders, the runes fed into them and the bytes they produced. It is safe for concurrent use
type Collector struct {
	mu      sync.Mutex
	renders uint64
	runes   uint64
	bytes   uint64
	started time.Time
}

// New creates a Collector, its uptime starts now
func New() *Collector {
	return &Collector{started: time.Now()}
}

// Input records one render of text
func (c *Collector) Input(text string) {
	c.mu.Lock()
	c.renders++
	c.runes += uint64(utf8.RuneCountInString(text))
	c.mu.Unlock()
}

// Output records n bytes of rendered output
func (c *Collector) Output(n int) {
	if n <= 0 {
		return
	}

	c.mu.Lock()
	c.bytes += uint64(n)
	c.mu.Unlock()
}

type countingWriter struct {
	w io.Writer
	c *Collector
}

func (cw countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.c.Output(n)

	return n, err
}

// Writer wraps w so everything written through it is counted as output
func (c *Collector) Writer(w io.Writer) io.Writer {
	return countingWriter{w: w, c: c}
}

// Counts returns the current counters
func (c *Collector) Counts() (renders, runes, bytes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.renders, c.runes, c.bytes
}

// Report is a point in time view of a session together with the process and host it runs on
type Report struct {
	Renders, Runes, Bytes uint64
	Uptime                time.Duration

	ProcessMemory uint64
	Goroutines    int
	GoVersion     string

	// CPU and memory of the whole host. Errors are kept so a missing value reads as such
	CPUPercent         float64
	CPUErr             error
	HostUsed, HostSize uint64
	HostPercent        float64
	HostErr            error
}

// Report gathers the session counters and samples the host
func (c *Collector) Report() Report {
	var r Report

	r.Renders, r.Runes, r.Bytes = c.Counts()
	r.Uptime = time.Since(c.started).Round(time.Millisecond)

	ms := new(runtime.MemStats)
	runtime.ReadMemStats(ms)
	r.ProcessMemory = ms.Sys
	r.Goroutines = runtime.NumGoroutine()
	r.GoVersion = runtime.Version()

	if load, err := cpu.Percent(50*time.Millisecond, false); err != nil {
		r.CPUErr = err
	} else if len(load) == 0 {
		r.CPUErr = errors.New("no cpu samples")
	} else {
		r.CPUPercent = load[0]
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		r.HostErr = err
	} else {
		r.HostUsed, r.HostSize, r.HostPercent = vm.Used, vm.Total, vm.UsedPercent
	}

	return r
}

// Session describes the counters
func (r Report) Session() string {
	out := fmt.Sprintf(
		"%s renders, %s runes in, %s out, up %s",
		humanize.Comma(int64(r.Renders)), humanize.Comma(int64(r.Runes)), humanize.IBytes(r.Bytes), r.Uptime,
	)

	if r.Runes > 0 {
		out += fmt.Sprintf(" (%.1f bytes per rune)", float64(r.Bytes)/float64(r.Runes))
	}

	return out
}

// String puts the session, the process and the host on one line
func (r Report) String() string {
	sb := strings.Builder{}
	sb.WriteString("pipetext " + version.Version + ": " + r.Session())
	fmt.Fprintf(&sb, " | process %s, %d goroutines, %s", humanize.IBytes(r.ProcessMemory), r.Goroutines, r.GoVersion)

	sb.WriteString(" | host cpu ")

	if r.CPUErr != nil {
		sb.WriteString("unknown")
	} else {
		fmt.Fprintf(&sb, "%.2f%%", r.CPUPercent)
	}

	sb.WriteString(", memory ")

	if r.HostErr != nil {
		sb.WriteString("unknown")
	} else {
		fmt.Fprintf(&sb, "%s/%s (%.2f%%)", humanize.IBytes(r.HostUsed), humanize.IBytes(r.HostSize), r.HostPercent)
	}

	return sb.String()
}

// Format samples a Report and formats it
func (c *Collector) Format() string {
	return c.Report().String()
}
