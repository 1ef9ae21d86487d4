package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/rocketscienceinc/othello/internal/entity"
)

var (
	ErrInterrupted   = errors.New("input interrupted")
	ErrMalformedMove = errors.New("move must be two numbers: row and column")
)

// LineReader - line input with an adjustable prompt, satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Prompt - asks players for their moves on a terminal.
type Prompt struct {
	reader LineReader
	out    io.Writer
}

func NewPrompt(reader LineReader, out io.Writer) *Prompt {
	return &Prompt{
		reader: reader,
		out:    out,
	}
}

// RequestMove - reads lines until one holds a row and a column. Whether the move is legal is not checked here.
func (that *Prompt) RequestMove(ctx context.Context, player *entity.Player) (int, int, error) {
	that.reader.SetPrompt(fmt.Sprintf("%s, enter your move (row and column): ", player.Name))

	for {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}

		line, err := that.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return 0, 0, ErrInterrupted
		}

		if err != nil {
			return 0, 0, fmt.Errorf("failed to read move: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		row, col, err := ParseMove(line)
		if err != nil {
			fmt.Fprintf(that.out, "%v. Try again.\n", err)
			continue
		}

		return row, col, nil
	}
}

// ParseMove - parses "row col" or "row,col".
func ParseMove(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrMalformedMove, strings.TrimSpace(line))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q is not a number", ErrMalformedMove, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q is not a number", ErrMalformedMove, fields[1])
	}

	return row, col, nil
}
