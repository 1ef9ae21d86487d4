package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/othello/internal/config"
	"github.com/rocketscienceinc/othello/internal/console"
	"github.com/rocketscienceinc/othello/internal/entity"
	"github.com/rocketscienceinc/othello/internal/othello"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app", "game_id", uuid.New().String())

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     conf.Console.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	closeTerminal := sync.OnceFunc(func() {
		if closeErr := rl.Close(); closeErr != nil {
			log.Error("could not close terminal", "error", closeErr)
		}
	})
	defer closeTerminal()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ^C is read by the terminal as an interrupt, SIGTERM unblocks the pending read
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
			closeTerminal()
		case <-ctx.Done():
		}
	}()

	return runGame(ctx, log, conf, console.NewPrompt(rl, rl.Stdout()), console.NewRenderer(rl.Stdout(), colorProfile(conf)))
}

func runGame(ctx context.Context, log *slog.Logger, conf *config.Config, source othello.MoveSource, display othello.Display) error {
	white := entity.NewPlayer(conf.Players.White.Name, entity.White)
	black := entity.NewPlayer(conf.Players.Black.Name, entity.Black)

	first, second := white, black
	if conf.FirstColor == config.ColorBlack {
		first, second = black, white
	}

	controller, err := othello.NewController(log, entity.NewBoard(), first, second)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	log.Info("Game started", "white", white.Name, "black", black.Name, "first", first.Name)

	reason, err := controller.Run(ctx, source, display)
	switch {
	case err == nil:
		log.Info("Game finished", "reason", string(reason))
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, console.ErrInterrupted), errors.Is(err, context.Canceled):
		log.Info("Game abandoned", "error", err)
		return nil
	default:
		return fmt.Errorf("game failed: %w", err)
	}
}

func colorProfile(conf *config.Config) termenv.Profile {
	if conf.Console.NoColor {
		return termenv.Ascii
	}

	return termenv.NewOutput(os.Stdout).EnvColorProfile()
}
