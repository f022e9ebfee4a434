// Package log is a small levelled logger. Level tags can optionally be written as pipetext markup and passed
// through a renderer, which lets terminal output show coloured levels while files and pipes get plain tags
package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Flags that change what is written before each message
const (
	FTimestamp = 1 << iota
	FShowFile
)

// Levels, lowest first
const (
	TRACE = 10 * iota
	DEBUG
	INFO
	WARN
	ERROR
	CRIT
	PANIC
)

// Off is a level above every other level, loggers at this level write nothing
const Off = PANIC + 10

var levelNames = map[int]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	CRIT:  "CRIT ",
	PANIC: "PANIC",
}

// markup used for the level tag when a tag renderer is set
var levelMarkup = map[int]string{
	TRACE: "|.",
	DEBUG: "|c",
	INFO:  "|g",
	WARN:  "|Y",
	ERROR: "|R",
	CRIT:  "|R|_",
	PANIC: "|M|_",
}

func levelToString(level int) string {
	if res, ok := levelNames[level]; ok {
		return res
	}

	return "?????"
}

// ParseLevel converts a level name (trace, debug, info, warn, error, crit, panic or off) to its level
func ParseLevel(name string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return TRACE, nil
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	case "crit", "critical":
		return CRIT, nil
	case "panic":
		return PANIC, nil
	case "off", "none":
		return Off, nil
	}

	return 0, fmt.Errorf("unknown log level %q", name)
}

// Logger is a level based logging engine
type Logger struct {
	flags    int
	output   io.Writer
	prefix   string
	wMutex   *sync.Mutex
	minLevel int
	render   func(string) string
}

// New creates a new logger with the set options
func New(flags int, output io.Writer, prefix string, minLevel int) *Logger {
	return &Logger{flags: flags, output: output, prefix: prefix, minLevel: minLevel, wMutex: new(sync.Mutex)}
}

// Discard returns a Logger that writes nothing
func Discard() *Logger {
	return New(0, io.Discard, "", Off)
}

// Flags returns the logger's flags
func (l *Logger) Flags() int {
	return l.flags
}

// SetFlags sets the logger's flags
func (l *Logger) SetFlags(flags int) *Logger {
	l.flags = flags
	return l
}

// SetOutput changes where the logger writes to
func (l *Logger) SetOutput(output io.Writer) *Logger {
	l.wMutex.Lock()
	l.output = output
	l.wMutex.Unlock()

	return l
}

// Prefix returns the logger's prefix
func (l *Logger) Prefix() string {
	return l.prefix
}

// SetPrefix sets the logger's prefix
func (l *Logger) SetPrefix(prefix string) *Logger {
	l.prefix = prefix
	return l
}

// MinLevel returns the lowest level this logger writes
func (l *Logger) MinLevel() int {
	return l.minLevel
}

// SetMinLevel changes the lowest level this logger writes
func (l *Logger) SetMinLevel(level int) *Logger {
	l.minLevel = level
	return l
}

// SetTagRenderer makes the logger write its level tags as markup and pass them through fn before writing. A nil fn
// goes back to plain tags
func (l *Logger) SetTagRenderer(fn func(string) string) *Logger {
	l.render = fn
	return l
}

// Enabled reports whether a message at level would be written
func (l *Logger) Enabled(level int) bool {
	return l != nil && level >= l.minLevel
}

func shortenFilename(filename string) string {
	if idx := strings.LastIndexByte(filename, '/'); idx != -1 {
		return filename[idx+1:]
	}

	return filename
}

const openBrace = '['
const closeBrace = ']'
const space = ' '

func (l *Logger) levelTag(level int) string {
	tag := string(openBrace) + levelToString(level) + string(closeBrace)
	if l.render == nil {
		return tag
	}

	// the tag has no pipes of its own, so only the colour directives around it are interpreted
	return l.render(levelMarkup[level] + tag + "|n")
}

func (l *Logger) writeOut(msg string, level int) {
	if !l.Enabled(level) {
		return
	}

	outStr := strings.Builder{}
	if l.flags&FTimestamp != 0 {
		outStr.WriteRune(openBrace)
		outStr.WriteString(time.Now().Format("15:04:05.000"))
		outStr.WriteRune(closeBrace)
		outStr.WriteRune(space)
	}

	outStr.WriteString(l.levelTag(level))
	outStr.WriteRune(space)

	if l.flags&FShowFile != 0 {
		outStr.WriteRune(openBrace)

		_, file, line, ok := runtime.Caller(2)
		if !ok {
			outStr.WriteString("???")
		} else {
			outStr.WriteString(shortenFilename(file))
			outStr.WriteRune(':')
			outStr.WriteString(strconv.Itoa(line))
		}

		outStr.WriteRune(closeBrace)
		outStr.WriteRune(space)
	}

	if l.prefix != "" {
		outStr.WriteRune(openBrace)
		outStr.WriteString(l.prefix)
		outStr.WriteRune(closeBrace)
		outStr.WriteRune(space)
	}

	outStr.WriteString(strings.TrimRight(msg, "\r\n"))
	outStr.WriteRune('\n')

	l.wMutex.Lock()
	defer l.wMutex.Unlock()
	_, _ = io.WriteString(l.output, outStr.String())
}

// Trace logs the passed data at the Trace level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Trace(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), TRACE)
}

// Tracef logs at the Trace level using the format string passed as the first argument to format the message
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), TRACE)
}

// Debug logs the passed data at the Debug level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Debug(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), DEBUG)
}

// Debugf logs at the Debug level using the format string passed as the first argument to format the message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), DEBUG)
}

// Info logs the passed data at the Info level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Info(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), INFO)
}

// Infof logs at the Info level using the format string passed as the first argument to format the message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), INFO)
}

// Warn logs the passed data at the Warn level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Warn(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), WARN)
}

// Warnf logs at the Warn level using the format string passed as the first argument to format the message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), WARN)
}

// Error logs the passed data at the Error level
func (l *Logger) Error(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), ERROR)
}

// Errorf logs at the Error level using the format string passed as the first argument to format the message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), ERROR)
}

// Crit logs the passed data at the Crit level, then exits
func (l *Logger) Crit(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), CRIT)
	os.Exit(1)
}

// Critf logs at the Crit level using the format string passed as the first argument, then exits
func (l *Logger) Critf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), CRIT)
	os.Exit(1)
}

// Panic logs the passed data at the Panic level, then panics with the message
func (l *Logger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.writeOut(msg, PANIC)
	panic(msg)
}

// Panicf logs at the Panic level using the format string passed as the first argument, then panics with the message
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.writeOut(msg, PANIC)
	panic(msg)
}

// Clone returns a copy of the logger that shares its output and output lock
func (l Logger) Clone() *Logger { //nolint:gocritic // copying is the point
	return &l
}
