// Package repl is the interactive pipetext shell. Lines are rendered as they are entered, lines starting with ':'
// are commands
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/MinaswanNakamoto/pipetext/internal/command"
	"github.com/MinaswanNakamoto/pipetext/internal/stats"
	"github.com/MinaswanNakamoto/pipetext/pkg/log"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
)

// CommandPrefix marks a line as a command. Doubling it renders the line with a single leading prefix
const CommandPrefix = ":"

const defaultSearchLimit = 10

// Shell renders lines through a Session and runs commands against it
type Shell struct {
	session *pipetext.Session
	table   *emoji.Table
	stats   *stats.Collector
	out     io.Writer
	log     *log.Logger
	manager *command.Manager
	done    bool
}

// New creates a Shell writing to out. table is only used for :emoji searches, rendering uses the session's own
func New(session *pipetext.Session, table *emoji.Table, collector *stats.Collector, out io.Writer, logger *log.Logger) *Shell {
	if collector == nil {
		collector = stats.New()
	}

	s := &Shell{session: session, table: table, stats: collector, out: out, log: logger}
	s.manager = command.NewManager(logger.Clone().SetPrefix("CMD"), s.reply, CommandPrefix)
	s.registerCommands()

	return s
}

// Done reports whether :quit has been run
func (s *Shell) Done() bool { return s.done }

// Manager returns the shell's command manager, so callers can add their own commands
func (s *Shell) Manager() *command.Manager { return s.manager }

// reply writes a message rendered on its own, without touching the session's state
func (s *Shell) reply(msg string) {
	_, _ = io.WriteString(s.out, pipetext.Pipetext(msg, false, false)+"\n")
}

func (s *Shell) registerCommands() {
	cmds := []struct {
		name    string
		minArgs int
		fn      command.Callback
		help    string
	}{
		{"vars", 0, s.cmdVars, "lists variables and their raw values"},
		{"set", 2, s.cmdSet, "set <name> <value...> sets a variable without rendering it"},
		{"unset", 1, s.cmdUnset, "unset <name...> removes variables"},
		{"emoji", 1, s.cmdEmoji, "emoji <query...> fuzzy searches emoji names"},
		{"load", 1, s.cmdLoad, "load <path> renders a file"},
		{"reset", 0, s.cmdReset, "drops styles, colours and box mode. Variables are kept"},
		{"stats", 0, s.cmdStats, "shows session and system statistics"},
		{"quit", 0, s.cmdQuit, "leaves the shell"},
	}

	for _, c := range cmds {
		if err := s.manager.AddCommand(c.name, c.minArgs, c.fn, c.help); err != nil {
			s.log.Warnf("could not add command %s: %s", c.name, err)
		}
	}
}

func (s *Shell) cmdVars(data *command.Data) {
	store := s.session.Variables()

	names := store.Names()
	if len(names) == 0 {
		data.Reply("no variables set")
		return
	}

	for _, name := range names {
		value, _ := store.Get(name)
		data.Replyf("|c%s|n = %s", pipetext.Escape(name), pipetext.Escape(value))
	}
}

func (s *Shell) cmdSet(data *command.Data) {
	s.session.Variables().Set(data.Args[0], strings.Join(data.Args[1:], " "))
}

func (s *Shell) cmdUnset(data *command.Data) {
	for _, name := range data.Args {
		if !s.session.Variables().Delete(name) {
			data.Replyf("no variable named %q", pipetext.Escape(name))
		}
	}
}

func (s *Shell) cmdEmoji(data *command.Data) {
	query := strings.Join(data.Args, " ")

	results := s.table.Search(query, defaultSearchLimit)
	if len(results) == 0 {
		data.Replyf("nothing matches %q", pipetext.Escape(query))
		return
	}

	for _, e := range results {
		data.Replyf("%s |c%s|n", emoji.Decode(e.Replacement), pipetext.Escape(e.Name))
	}
}

func (s *Shell) cmdLoad(data *command.Data) {
	if err := s.RenderFile(data.Args[0]); err != nil {
		data.Replyf("|R%s|n", pipetext.Escape(err.Error()))
	}
}

func (s *Shell) cmdReset(data *command.Data) {
	s.session.Reset()
	data.Reply("state reset")
}

func (s *Shell) cmdStats(data *command.Data) {
	data.Reply(pipetext.Escape(s.stats.Format()))
}

func (s *Shell) cmdQuit(*command.Data) {
	s.done = true
}

// Render writes text through the session, counting it in the shell's stats
func (s *Shell) Render(text string) error {
	s.stats.Input(text)

	if err := s.session.Write(s.stats.Writer(s.out), text); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}

// RenderFile renders the contents of the file at path
func (s *Shell) RenderFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	text := string(data)
	s.stats.Input(text)

	if err := s.session.Stream(s.stats.Writer(s.out), text); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}

// HandleLine runs line as a command if it is one, and renders it otherwise
func (s *Shell) HandleLine(line string) error {
	if strings.HasPrefix(line, CommandPrefix+CommandPrefix) {
		return s.Render(line[len(CommandPrefix):])
	}

	if isCommand, err := s.manager.ParseLine(line); isCommand {
		return err
	}

	return s.Render(line)
}

// Completer completes command names, command names after :help and variable names after :unset
func (s *Shell) Completer() *readline.PrefixCompleter {
	commandNames := func(string) []string { return s.manager.Names() }
	variableNames := func(string) []string { return s.session.Variables().Names() }

	var items []readline.PrefixCompleterInterface

	for _, name := range s.manager.Names() {
		switch name {
		case "help":
			items = append(items, readline.PcItem(CommandPrefix+name, readline.PcItemDynamic(commandNames)))
		case "unset":
			items = append(items, readline.PcItem(CommandPrefix+name, readline.PcItemDynamic(variableNames)))
		default:
			items = append(items, readline.PcItem(CommandPrefix+name))
		}
	}

	return readline.NewPrefixCompleter(items...)
}

// NewReadline creates the line editor for a shell. historyFile may be empty. It is created before the Shell so that
// loggers can write through it without breaking the prompt
func NewReadline(historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          pipetext.Pipetext("|Gpipetext|n> ", false, false),
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       CommandPrefix + "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("could not create line editor: %w", err)
	}

	return rl, nil
}

// Run reads lines from rl until :quit, EOF or an interrupt on an empty line. Errors from individual lines are logged
// and do not stop the shell
func (s *Shell) Run(rl *readline.Instance) error {
	rl.Config.AutoComplete = s.Completer()

	s.log.Infof("pipetext shell, %shelp for commands", CommandPrefix)

	for !s.done {
		line, err := rl.Readline()

		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return nil
			}

			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("could not read line: %w", err)
		}

		if err := s.HandleLine(line); err != nil {
			s.log.Warn(err)
		}
	}

	return nil
}
