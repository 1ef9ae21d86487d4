package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/othello/internal/config"
	"github.com/rocketscienceinc/othello/internal/console"
	"github.com/rocketscienceinc/othello/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTerminalGone = errors.New("terminal gone")

type scriptedReader struct {
	lines []string
	err   error
}

func (that *scriptedReader) Readline() (string, error) {
	if len(that.lines) == 0 {
		return "", that.err
	}

	line := that.lines[0]
	that.lines = that.lines[1:]

	return line, nil
}

func (that *scriptedReader) SetPrompt(string) {}

func newTestConfig(firstColor string) *config.Config {
	return &config.Config{
		LogLevel:   "debug",
		FirstColor: firstColor,
		Players: config.Players{
			White: config.Player{Name: "Player 1"},
			Black: config.Player{Name: "Player 2"},
		},
	}
}

func TestRunGame(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("White moves first and end of input abandons the game", func(t *testing.T) {
		// Given: white opens with (3,4), black mistypes and then answers (3,3)
		reader := &scriptedReader{lines: []string{"3 4", "4 4", "3,3"}, err: io.EOF}
		out := &bytes.Buffer{}

		// When: running the game
		err := runGame(context.Background(), logger, newTestConfig(config.ColorWhite),
			console.NewPrompt(reader, out), console.NewRenderer(out, termenv.Ascii))

		// Then: the game is abandoned without error after three turns
		require.NoError(t, err)

		text := out.String()
		assert.Equal(t, 3, strings.Count(text, "Current board:"))
		assert.Less(t, strings.Index(text, "Player 1, it's your turn."), strings.Index(text, "Player 2, it's your turn."))
		assert.Contains(t, text, "Invalid move: the cell is already occupied. Try again.")

		afterBlack, err := entity.ParseBoard(
			"........",
			"........",
			"..XO....",
			"...XO...",
			"...OX...",
			"........",
			"........",
			"........",
		)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(text, "Current board:\n"+afterBlack.String()+"Player 1, it's your turn.\n"))
	})

	t.Run("Black can be configured to move first", func(t *testing.T) {
		reader := &scriptedReader{err: io.EOF}
		out := &bytes.Buffer{}

		err := runGame(context.Background(), logger, newTestConfig(config.ColorBlack),
			console.NewPrompt(reader, out), console.NewRenderer(out, termenv.Ascii))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Player 2, it's your turn.")
		assert.NotContains(t, out.String(), "Player 1, it's your turn.")
	})

	t.Run("Input failure is reported", func(t *testing.T) {
		reader := &scriptedReader{err: errTerminalGone}

		err := runGame(context.Background(), logger, newTestConfig(config.ColorWhite),
			console.NewPrompt(reader, io.Discard), console.NewRenderer(io.Discard, termenv.Ascii))

		require.ErrorIs(t, err, errTerminalGone)
	})
}

func TestColorProfile(t *testing.T) {
	t.Run("Config disables color", func(t *testing.T) {
		conf := newTestConfig(config.ColorWhite)
		conf.Console.NoColor = true

		assert.Equal(t, termenv.Ascii, colorProfile(conf))
	})

	t.Run("Any non-empty NO_COLOR disables color", func(t *testing.T) {
		// Given: NO_COLOR set to a non-boolean value
		t.Setenv("NO_COLOR", "yes")

		// When: picking the profile for a config that leaves color on
		profile := colorProfile(newTestConfig(config.ColorWhite))

		// Then: the terminal profile falls back to plain text
		assert.Equal(t, termenv.Ascii, profile)
	})
}
