package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the config file", func(t *testing.T) {
		// Given: a complete config file
		path := writeConfig(t, `
log-level: debug
log-file: othello.log
first-color: black
players:
  white:
    name: Alice
  black:
    name: Bob
console:
  no-color: true
  history-file: .othello_history
`)

		// When: loading it
		conf, err := Load(path)

		// Then: every field is set
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel:   "debug",
			LogFile:    "othello.log",
			FirstColor: ColorBlack,
			Players: Players{
				White: Player{Name: "Alice"},
				Black: Player{Name: "Bob"},
			},
			Console: Console{
				NoColor:     true,
				HistoryFile: ".othello_history",
			},
		}, conf)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading
		conf, err := Load(path)

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, ColorWhite, conf.FirstColor)
		assert.Equal(t, "Player 1", conf.Players.White.Name)
		assert.Equal(t, "Player 2", conf.Players.Black.Name)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and environment variables
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("OTHELLO_LOG_LEVEL", "error")
		t.Setenv("OTHELLO_BLACK_NAME", "Carol")

		// When: loading
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "error", conf.LogLevel)
		assert.Equal(t, "Carol", conf.Players.Black.Name)
	})

	t.Run("Ignores the NO_COLOR convention values", func(t *testing.T) {
		for _, value := range []string{"yes", "", "1"} {
			// Given: NO_COLOR exported with a non-boolean or empty value
			path := filepath.Join(t.TempDir(), "missing.yml")
			t.Setenv("NO_COLOR", value)

			// When: loading
			conf, err := Load(path)

			// Then: the config still loads, color is left to the terminal profile
			require.NoError(t, err, "NO_COLOR=%q", value)
			assert.False(t, conf.Console.NoColor)
		}
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})

	t.Run("Rejects an unknown first color", func(t *testing.T) {
		path := writeConfig(t, "first-color: red\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "FirstColor")
	})

	t.Run("Rejects players with the same name", func(t *testing.T) {
		path := writeConfig(t, "players:\n  white:\n    name: Dave\n  black:\n    name: Dave\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "both players are named")
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("Panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "log-level: verbose\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})

	t.Run("Returns a valid config", func(t *testing.T) {
		path := writeConfig(t, "log-level: info\n")

		conf := MustLoad(path)

		assert.Equal(t, "info", conf.LogLevel)
	})
}
