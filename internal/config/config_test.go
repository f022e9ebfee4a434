package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinaswanNakamoto/pipetext/pkg/log"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/variables"
)

var tests = []struct {
	name          string
	tomlStr       string
	expectedError string
	expectedConf  *Config
}{
	{
		name:         "empty",
		expectedConf: Default(),
	},
	{
		name: "render settings",
		tomlStr: `
		[render]
		box_mode = false
		ampersand_mode = true
		sleep = false
		max_depth = 4
		max_repeat = 100
		max_nested = 500
		`,
		expectedConf: &Config{
			Render: Render{BoxMode: false, AmpersandMode: true, Sleep: false, MaxDepth: 4, MaxRepeat: 100, MaxNested: 500},
			Log:    Log{Level: "info"},
		},
	},
	{
		name: "log, variables and emoji",
		tomlStr: `
		[log]
		level = "debug"
		timestamps = true

		[variables]
		name = "world"

		[[emoji]]
		name = "party"
		replacement = "|U1F389"
		`,
		expectedConf: &Config{
			Render:    Default().Render,
			Log:       Log{Level: "debug", Timestamps: true},
			Variables: map[string]string{"name": "world"},
			Emoji:     []emoji.Entry{{Name: "party", Replacement: "|U1F389"}},
		},
	},
	{
		name:          "bad level",
		tomlStr:       "[log]\nlevel = \"loud\"",
		expectedError: "invalid config: unknown log level \"loud\"",
	},
	{
		name:          "bad depth",
		tomlStr:       "[render]\nmax_depth = 0",
		expectedError: "invalid config: max_depth must be at least 1, not 0",
	},
	{
		name:          "bad repeat limit",
		tomlStr:       "[render]\nmax_repeat = -1",
		expectedError: "invalid config: max_repeat must be at least 1, not -1",
	},
	{
		name:          "bad nested limit",
		tomlStr:       "[render]\nmax_nested = 0",
		expectedError: "invalid config: max_nested must be at least 1, not 0",
	},
	{
		name:          "bad variable",
		tomlStr:       "[variables]\n\"a=b\" = \"c\"",
		expectedError: "invalid config: invalid variable name \"a=b\"",
	},
	{
		name:          "bad emoji",
		tomlStr:       "[[emoji]]\nname = \"x\"",
		expectedError: "invalid config: emoji entry 0 needs both a name and a replacement",
	},
}

func TestFromString(t *testing.T) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			conf, err := FromString(tt.tomlStr)
			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedConf, conf)
		})
	}
}

func TestGetConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nampersand_mode = true\n"), 0o600))

	conf, err := GetConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, conf.OriginalPath)
	assert.True(t, conf.Render.AmpersandMode)
	assert.True(t, conf.Render.BoxMode)

	_, err = GetConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, ErrNoConfig)

	_, err = Find(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestFindDefault(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nothing.toml"))

	conf, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestApply(t *testing.T) {
	conf, err := FromString(`
	[render]
	sleep = false
	case_sensitive_emoji = true
	max_repeat = 10

	[[emoji]]
	name = "party"
	replacement = "|U1F389"
	`)
	require.NoError(t, err)

	opts := pipetext.DefaultOptions()
	opts.Sleep = time.Sleep
	opts.Emoji = emoji.NewTable(emoji.Entry{Name: "check", Replacement: "|U2714"})

	conf.Apply(&opts)

	assert.Nil(t, opts.Sleep)
	assert.True(t, opts.BoxMode)
	assert.True(t, opts.CaseSensitiveEmoji)
	assert.Equal(t, 10, opts.MaxRepeat)
	assert.Equal(t, pipetext.DefaultMaxNested, opts.MaxNested)
	assert.Equal(t, []string{"check", "party"}, opts.Emoji.Names())
}

func TestLogSettings(t *testing.T) {
	conf := Default()
	assert.Equal(t, log.INFO, conf.LogLevel())
	assert.Equal(t, 0, conf.LogFlags())

	conf.Log = Log{Level: "trace", Timestamps: true}
	assert.Equal(t, log.TRACE, conf.LogLevel())
	assert.Equal(t, log.FTimestamp, conf.LogFlags())
}

func TestPreset(t *testing.T) {
	conf := Default()
	conf.Variables = map[string]string{"name": "world"}

	store := variables.New()
	conf.Preset(store)

	v, ok := store.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "world", v)
}
