package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/othello/internal/entity"
	"github.com/rocketscienceinc/othello/internal/othello"
)

// piece colors, ANSI palette
const (
	whiteColor = "12"
	blackColor = "9"
	emptyColor = "8"
)

// Renderer - prints the game to a terminal. With the Ascii profile the board is
// printed in the plain '.', 'O', 'X' notation.
type Renderer struct {
	out     io.Writer
	output  *termenv.Output
	profile termenv.Profile
}

func NewRenderer(out io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{
		out:     out,
		output:  termenv.NewOutput(out, termenv.WithProfile(profile)),
		profile: profile,
	}
}

func (that *Renderer) ShowBoard(grid entity.Grid) {
	var sb strings.Builder

	sb.WriteString("Current board:\n")
	for _, row := range grid {
		for col, cell := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.piece(cell))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(that.out, sb.String())
}

func (that *Renderer) ShowTurn(player *entity.Player) {
	fmt.Fprintf(that.out, "%s, it's your turn.\n", player.Name)
}

func (that *Renderer) ShowInvalidMove(_ *entity.Player, err error, legal []entity.Position) {
	fmt.Fprintf(that.out, "Invalid move: %s. Try again.\n", describeInvalidMove(err))

	if len(legal) == 0 {
		return
	}

	moves := make([]string, 0, len(legal))
	for _, pos := range legal {
		moves = append(moves, fmt.Sprintf("%d %d", pos.Row, pos.Col))
	}

	fmt.Fprintf(that.out, "Legal moves: %s\n", strings.Join(moves, ", "))
}

func (that *Renderer) ShowGameOver(reason othello.Reason, grid entity.Grid) {
	that.ShowBoard(grid)

	switch reason {
	case othello.ReasonBoardFull:
		fmt.Fprintln(that.out, "Game over. The board is full.")
	case othello.ReasonBothPlayersStuck:
		fmt.Fprintln(that.out, "Game over. Neither player can move.")
	default:
		fmt.Fprintln(that.out, "Game over.")
	}
}

func (that *Renderer) piece(cell entity.Cell) string {
	if that.profile == termenv.Ascii {
		return cell.Glyph()
	}

	style := that.output.String(cell.Glyph())

	switch cell {
	case entity.White:
		style = style.Foreground(that.output.Color(whiteColor)).Bold()
	case entity.Black:
		style = style.Foreground(that.output.Color(blackColor)).Bold()
	default:
		style = style.Foreground(that.output.Color(emptyColor))
	}

	return style.String()
}

func describeInvalidMove(err error) string {
	switch {
	case errors.Is(err, entity.ErrOutOfBounds):
		return fmt.Sprintf("rows and columns go from 1 to %d", entity.Size)
	case errors.Is(err, entity.ErrCellOccupied):
		return "the cell is already occupied"
	case errors.Is(err, entity.ErrNoCapture):
		return "the move does not flip any piece"
	default:
		return err.Error()
	}
}
