package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinaswanNakamoto/pipetext/pkg/log"
)

type replies struct {
	lines []string
}

func (r *replies) reply(msg string) { r.lines = append(r.lines, msg) }

func newTestManager() (*Manager, *replies) {
	r := &replies{}
	return NewManager(log.Discard(), r.reply, ":"), r
}

func TestManager_AddCommand(t *testing.T) {
	preExisting, _ := newTestManager()
	_ = preExisting.AddCommand("dupe", 0, nil, "dupe command is duped")

	tests := []struct {
		name    string
		m       *Manager
		cmdName string
		wantErr bool
	}{
		{name: "space error", m: NewManager(log.Discard(), nil), cmdName: "basic test", wantErr: true},
		{name: "single name", m: NewManager(log.Discard(), nil), cmdName: "test"},
		{name: "duped commands", m: preExisting, cmdName: "DuPe", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.AddCommand(tt.cmdName, 0, nil, "help")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestManager_RemoveCommand(t *testing.T) {
	m, _ := newTestManager()
	require.NoError(t, m.AddCommand("temp", 0, nil, ""))

	assert.NoError(t, m.RemoveCommand("TEMP"))
	assert.Error(t, m.RemoveCommand("temp"))
	assert.Equal(t, []string{"help"}, m.Names())
}

func TestManager_ParseLine(t *testing.T) {
	m, r := newTestManager()

	var got *Data

	require.NoError(t, m.AddCommand("set", 2, func(data *Data) { got = data }, "set name value"))

	tests := []struct {
		name        string
		line        string
		wantCommand bool
		wantErr     error
		wantArgs    []string
		wantOrig    string
	}{
		{name: "not a command", line: "|rhello"},
		{name: "empty command", line: ":", wantCommand: true},
		{name: "unknown", line: ":nope", wantCommand: true, wantErr: ErrNoCommand},
		{
			name:        "quoted args",
			line:        `:set greeting "hello there"`,
			wantCommand: true,
			wantArgs:    []string{"greeting", "hello there"},
			wantOrig:    `greeting "hello there"`,
		},
		{name: "case insensitive", line: ":SET a b", wantCommand: true, wantArgs: []string{"a", "b"}, wantOrig: "a b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			isCommand, err := m.ParseLine(tt.line)

			assert.Equal(t, tt.wantCommand, isCommand)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)

			if tt.wantArgs == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantArgs, got.Args)
			assert.Equal(t, tt.wantOrig, got.OriginalArgs)
		})
	}

	assert.Empty(t, r.lines)
}

func TestManager_ParseLineBadQuote(t *testing.T) {
	m, _ := newTestManager()

	isCommand, err := m.ParseLine(`:help "unterminated`)
	assert.True(t, isCommand)
	assert.Error(t, err)
}

func TestSingleCommand_NotEnoughArgs(t *testing.T) {
	m, r := newTestManager()
	fired := false

	require.NoError(t, m.AddCommand("unset", 1, func(*Data) { fired = true }, "unset name"))

	_, err := m.ParseLine(":unset")
	require.NoError(t, err)

	assert.False(t, fired)
	assert.Equal(t, []string{"unset needs at least 1 argument(s): unset name"}, r.lines)
}

func TestManager_Help(t *testing.T) {
	m, r := newTestManager()
	require.NoError(t, m.AddCommand("quit", 0, nil, "leave the shell"))

	for _, line := range []string{":help", ":help quit", ":help nope"} {
		_, err := m.ParseLine(line)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{
		"Available commands are help, quit",
		"quit: leave the shell",
		`unknown command "nope"`,
	}, r.lines)
}

func TestManager_IsCommand(t *testing.T) {
	m, _ := newTestManager()

	assert.True(t, m.IsCommand(":vars"))
	assert.False(t, m.IsCommand("vars"))
	assert.Equal(t, []string{":"}, m.Prefixes())
}
