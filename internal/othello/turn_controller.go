package othello

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/othello/internal/apperror"
	"github.com/rocketscienceinc/othello/internal/entity"
)

type Status string

const (
	StatusAwaitingMove Status = "awaiting_move"
	StatusGameOver     Status = "game_over"
)

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonBoardFull        Reason = "board_full"
	ReasonBothPlayersStuck Reason = "both_players_stuck"
)

var (
	ErrSameColor = errors.New("players must hold opposite colors")
	ErrNotAColor = errors.New("player color must be white or black")
	ErrNilPlayer = errors.New("player is required")
	ErrNilBoard  = errors.New("board is required")
)

// MoveSource - supplies candidate moves for a player. RequestMove blocks until a coordinate pair is available.
type MoveSource interface {
	RequestMove(ctx context.Context, player *entity.Player) (row, col int, err error)
}

// Display - receives everything the players should see.
type Display interface {
	ShowBoard(grid entity.Grid)
	ShowTurn(player *entity.Player)
	ShowInvalidMove(player *entity.Player, err error, legal []entity.Position)
	ShowGameOver(reason Reason, grid entity.Grid)
}

// Controller - alternates two players over one board until the game is over.
// The active player is tracked by color and looked up in players.
type Controller struct {
	logger  *slog.Logger
	board   *entity.Board
	players map[entity.Cell]*entity.Player
	current entity.Cell
	status  Status
	reason  Reason
}

// NewController - first moves first, second must hold the opposite color.
func NewController(logger *slog.Logger, board *entity.Board, first, second *entity.Player) (*Controller, error) {
	if board == nil {
		return nil, ErrNilBoard
	}

	if first == nil || second == nil {
		return nil, ErrNilPlayer
	}

	if !first.Color.IsColor() || !second.Color.IsColor() {
		return nil, fmt.Errorf("%w: %s and %s", ErrNotAColor, first.Color, second.Color)
	}

	if first.Color == second.Color {
		return nil, fmt.Errorf("%w: both are %s", ErrSameColor, first.Color)
	}

	return &Controller{
		logger: logger.With("component", "turn_controller"),
		board:  board,
		players: map[entity.Cell]*entity.Player{
			first.Color:  first,
			second.Color: second,
		},
		current: first.Color,
		status:  StatusAwaitingMove,
	}, nil
}

func (that *Controller) CurrentPlayer() *entity.Player {
	return that.players[that.current]
}

func (that *Controller) Status() Status {
	return that.status
}

func (that *Controller) Reason() Reason {
	return that.reason
}

func (that *Controller) IsFinished() bool {
	return that.status == StatusGameOver
}

// MakeTurn - applies one move for the current player and advances the game.
// An invalid move changes nothing and returns an error wrapping apperror.ErrInvalidMove.
func (that *Controller) MakeTurn(row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	mover := that.CurrentPlayer()
	if err := that.board.ApplyMove(row, col, mover.Color); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.logger.Debug("move applied",
		"player", mover.Name,
		"color", mover.Color.String(),
		"row", row,
		"col", col,
	)

	that.advance(mover.Color)

	return nil
}

// advance - decides who moves next after mover's accepted move.
func (that *Controller) advance(mover entity.Cell) {
	if that.board.IsFull() {
		that.finish(ReasonBoardFull)
		return
	}

	opponent := mover.Opponent()
	if that.board.HasAnyLegalMove(opponent) {
		that.current = opponent
		return
	}

	if !that.board.HasAnyLegalMove(mover) {
		that.finish(ReasonBothPlayersStuck)
		return
	}

	that.logger.Info("player has no legal move, turn skipped", "player", that.players[opponent].Name)
	that.current = mover
}

func (that *Controller) finish(reason Reason) {
	that.status = StatusGameOver
	that.reason = reason

	that.logger.Info("game over",
		"reason", string(reason),
		"white", that.board.Count(entity.White),
		"black", that.board.Count(entity.Black),
	)
}

// Run - plays rounds until the game is over. Rejected moves are reported to display
// and requested again. Errors from source and context cancellation end the loop.
func (that *Controller) Run(ctx context.Context, source MoveSource, display Display) (Reason, error) {
	for !that.IsFinished() {
		display.ShowBoard(that.board.RenderSnapshot())

		player := that.CurrentPlayer()
		display.ShowTurn(player)

		if err := that.playRound(ctx, source, display, player); err != nil {
			return ReasonNone, err
		}
	}

	display.ShowGameOver(that.reason, that.board.RenderSnapshot())

	return that.reason, nil
}

func (that *Controller) playRound(ctx context.Context, source MoveSource, display Display, player *entity.Player) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		row, col, err := source.RequestMove(ctx, player)
		if err != nil {
			return fmt.Errorf("failed to request move: %w", err)
		}

		err = that.MakeTurn(row, col)
		if err == nil {
			return nil
		}

		if !errors.Is(err, apperror.ErrInvalidMove) {
			return err
		}

		that.logger.Debug("move rejected", "player", player.Name, "row", row, "col", col, "error", err)
		display.ShowInvalidMove(player, err, that.board.LegalMoves(player.Color))
	}
}
