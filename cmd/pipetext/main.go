/*
Pipetext renders pipetext markup to the terminal. Text is taken from the command line, a file, standard input or an
interactive shell
*/
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/MinaswanNakamoto/pipetext/internal/config"
	"github.com/MinaswanNakamoto/pipetext/internal/emojitable"
	"github.com/MinaswanNakamoto/pipetext/internal/repl"
	"github.com/MinaswanNakamoto/pipetext/internal/stats"
	"github.com/MinaswanNakamoto/pipetext/internal/terminal"
	"github.com/MinaswanNakamoto/pipetext/internal/version"
	"github.com/MinaswanNakamoto/pipetext/pkg/log"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/colour"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/strip"
)

var (
	configPath = pflag.StringP(
		"config", "c", "", "Sets the configuration file to use (default "+config.DefaultPath()+" if it exists)",
	)
	file        = pflag.StringP("file", "f", "", "render a file, '-' reads standard input")
	ampersand   = pflag.BoolP("ampersand", "a", false, "enable & background directives from the start")
	noBox       = pflag.Bool("no-box", false, "disable the |- and |= box drawing modes")
	noSleep     = pflag.Bool("no-sleep", false, "ignore |[Ns] and |[Nms] delays")
	buffered    = pflag.BoolP("buffered", "b", false, "render everything before writing any of it")
	noNewline   = pflag.BoolP("no-newline", "n", false, "do not add a newline after text given as arguments")
	interactive = pflag.BoolP("interactive", "i", false, "start an interactive shell")
	history     = pflag.String("history", "", "history file for the interactive shell")
	demo        = pflag.Bool("demo", false, "render a short demonstration")
	showStats   = pflag.Bool("stats", false, "print session statistics to stderr when done")
	colourMode  = pflag.String( //nolint:misspell // colour is correct
		"colour", "always", "when to write control codes: always, auto (only to a terminal) or never",
	)
	verbose     = pflag.CountP("verbose", "v", "log more, can be repeated")
	showVersion = pflag.Bool("version", false, "print the version and exit")
)

func main() {
	pflag.Parse()

	if *showVersion {
		fmt.Println(version.Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pipetext: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Find(*configPath)
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	plain, err := stripOutput(*colourMode, os.Stdout)
	if err != nil {
		return err
	}

	logger := newLogger(conf)
	if conf.OriginalPath != "" {
		logger.Debugf("loaded config from %s", conf.OriginalPath)
	}

	if *interactive {
		return runShell(conf, logger, plain)
	}

	var out io.Writer = os.Stdout
	if plain {
		out = strip.NewWriter(out)
	}

	a := newApp(conf, logger, out)
	go a.restoreOnSignal()

	switch {
	case *demo:
		err = a.demo()
	case *file != "" && *file != "-":
		err = a.renderFile(*file)
	case *file == "" && len(pflag.Args()) > 0:
		err = a.renderArgs(strings.Join(pflag.Args(), " "))
	default:
		err = a.renderReader(os.Stdin)
	}

	if err != nil {
		return err
	}

	a.finish()

	return nil
}

func runShell(conf *config.Config, logger *log.Logger, plain bool) error {
	rl, err := repl.NewReadline(*history)
	if err != nil {
		return err
	}

	defer rl.Close()

	// logs go through readline so they do not break the prompt
	logger.SetOutput(rl.Stderr())

	out := rl.Stdout()
	if plain {
		out = strip.NewWriter(out)
	}

	a := newApp(conf, logger, out)
	sh := repl.New(a.session, a.emoji, a.stats, out, logger.Clone().SetPrefix("SHELL"))

	if err := sh.Run(rl); err != nil {
		return err
	}

	a.finish()

	return nil
}

// stripOutput decides from the --colour setting whether control codes should be removed from what is written to f
func stripOutput(mode string, f *os.File) (bool, error) {
	switch strings.ToLower(mode) {
	case "always", "":
		return false, nil
	case "never":
		return true, nil
	case "auto":
		return !terminal.IsTerminal(f), nil
	}

	return false, fmt.Errorf("unknown --colour setting %q, expected always, auto or never", mode) //nolint:misspell
}

func newLogger(conf *config.Config) *log.Logger {
	level := conf.LogLevel() - *verbose*10
	if level < log.TRACE {
		level = log.TRACE
	}

	logger := log.New(conf.LogFlags(), os.Stderr, "MAIN", level)
	if terminal.IsTerminal(os.Stderr) {
		logger.SetTagRenderer(func(tag string) string { return pipetext.Pipetext(tag, false, false) })
	}

	return logger
}

// app is everything one invocation renders with. Every render shares the one session
type app struct {
	session *pipetext.Session
	emoji   *emoji.Table
	stats   *stats.Collector
	out     io.Writer
	log     *log.Logger
}

func newApp(conf *config.Config, logger *log.Logger, out io.Writer) *app {
	opts := pipetext.DefaultOptions()
	opts.Emoji = emojitable.Default()
	opts.Size = terminal.NewSizeProvider(os.Stdout)
	opts.Logger = logger.Clone().SetPrefix("RENDER")

	conf.Apply(&opts)

	if *ampersand {
		opts.AmpersandMode = true
	}

	if *noBox {
		opts.BoxMode = false
	}

	if *noSleep {
		opts.Sleep = nil
	}

	logger.Debugf("%d emoji loaded", opts.Emoji.Len())

	session := pipetext.NewSession(opts)
	conf.Preset(session.Variables())

	collector := stats.New()

	return &app{session: session, emoji: opts.Emoji, stats: collector, out: collector.Writer(out), log: logger}
}

// restoreOnSignal puts the terminal back to normal colours and a visible cursor if we are killed mid render
func (a *app) restoreOnSignal() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM)

	sig := <-sigChan
	a.log.Debugf("caught signal: %s", sig)

	_, _ = io.WriteString(os.Stdout, colour.Reset+colour.ShowCursor+"\n")

	os.Exit(130)
}

func (a *app) finish() {
	if *showStats {
		fmt.Fprintln(os.Stderr, a.stats.Format())
	}
}
