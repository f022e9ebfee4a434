package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/anmitsu/go-shlex"

	"github.com/MinaswanNakamoto/pipetext/pkg/log"
)

// ErrNoCommand is returned by ParseLine for a command name that is not registered
var ErrNoCommand = errors.New("no such command")

// NewManager creates a Manager that sends command output to reply. Lines must start with one of prefixes to be
// treated as commands
func NewManager(logger *log.Logger, reply func(string), prefixes ...string) *Manager {
	m := &Manager{Logger: logger, replyFn: reply, commands: make(map[string]Command), commandPrefixes: prefixes}
	_ = m.AddCommand("help", 0, func(data *Data) {
		if len(data.Args) == 0 {
			data.Replyf("Available commands are %s", strings.Join(m.Names(), ", "))
			return
		}

		cmd := m.getCommandByName(data.Args[0])
		if cmd == nil {
			data.Replyf("unknown command %q", data.Args[0])
			return
		}

		data.Replyf("%s: %s", cmd.Name(), cmd.Help())
	}, "prints command help")

	return m
}

// Manager holds a set of commands and dispatches lines to them
type Manager struct {
	cmdMutex        sync.RWMutex
	commands        map[string]Command
	commandPrefixes []string
	Logger          *log.Logger
	replyFn         func(string)
}

// AddCommand registers a command. Names are case insensitive and cannot contain spaces
func (m *Manager) AddCommand(name string, minArgs int, callback Callback, help string) error {
	return m.addCommand(&SingleCommand{
		minArgs:  minArgs,
		callback: callback,
		help:     help,
		name:     strings.ToLower(name),
	})
}

// RemoveCommand removes the named command
func (m *Manager) RemoveCommand(name string) error {
	if m.getCommandByName(name) == nil {
		return fmt.Errorf("command %q does not exist on %v", name, m)
	}

	m.Logger.Debugf("removing command %s", name)
	m.cmdMutex.Lock()
	defer m.cmdMutex.Unlock()
	delete(m.commands, strings.ToLower(name))

	return nil
}

func (m *Manager) addCommand(cmd Command) error {
	if strings.Contains(cmd.Name(), " ") {
		return errors.New("commands cannot contain spaces")
	}

	if m.getCommandByName(cmd.Name()) != nil {
		return fmt.Errorf("command %q already exists on %v", cmd.Name(), m)
	}

	m.Logger.Debugf("adding command %s", cmd.Name())
	m.cmdMutex.Lock()
	m.commands[strings.ToLower(cmd.Name())] = cmd
	m.cmdMutex.Unlock()

	return nil
}

func (m *Manager) getCommandByName(name string) Command {
	m.cmdMutex.RLock()
	defer m.cmdMutex.RUnlock()

	if c, ok := m.commands[strings.ToLower(name)]; ok {
		return c
	}

	return nil
}

// Names returns the registered command names, sorted
func (m *Manager) Names() []string {
	m.cmdMutex.RLock()
	out := make([]string, 0, len(m.commands))

	for name := range m.commands {
		out = append(out, name)
	}
	m.cmdMutex.RUnlock()

	sort.Strings(out)

	return out
}

// Prefixes returns the prefixes that mark a line as a command
func (m *Manager) Prefixes() []string {
	return append([]string(nil), m.commandPrefixes...)
}

func (m *Manager) reply(msg string) {
	if m.replyFn == nil {
		m.Logger.Info(msg)
		return
	}

	m.replyFn(msg)
}

func (m *Manager) replyf(format string, args ...interface{}) {
	m.reply(fmt.Sprintf(format, args...))
}

// IsCommand reports whether line starts with one of the command prefixes
func (m *Manager) IsCommand(line string) bool {
	_, ok := m.stripPrefix(line)
	return ok
}

func (m *Manager) stripPrefix(line string) (string, bool) {
	for _, pfx := range m.commandPrefixes {
		if strings.HasPrefix(line, pfx) {
			return line[len(pfx):], true
		}
	}

	return "", false
}

// ParseLine runs the command on line, if it is one. Arguments are split shell style, so quoting works. The returned
// bool reports whether line was a command at all
func (m *Manager) ParseLine(line string) (bool, error) {
	stripped, ok := m.stripPrefix(line)
	if !ok {
		return false, nil
	}

	args, err := shlex.Split(stripped, true)
	if err != nil {
		return true, fmt.Errorf("could not parse command line %q: %w", line, err)
	}

	if len(args) == 0 {
		return true, nil
	}

	cmdName := args[0]

	cmd := m.getCommandByName(cmdName)
	if cmd == nil {
		return true, fmt.Errorf("%w: %q", ErrNoCommand, cmdName)
	}

	m.Logger.Debugf("firing command %q (original line %q)", cmdName, line)

	data := &Data{
		Args:         args[1:],
		OriginalArgs: strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(stripped), cmdName)),
		Manager:      m,
	}
	cmd.Fire(data)

	return true, nil
}

func (m *Manager) String() string {
	return fmt.Sprintf("command.Manager containing commands: %s", strings.Join(m.Names(), ", "))
}
