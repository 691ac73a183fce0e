package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/cli"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs an interactive session on stdin and stdout until the player quits.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          conf.Console.Prompt + " > ",
		HistoryFile:     conf.Console.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           io.NopCloser(os.Stdin),
		Stdout:          os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("could not open console: %w", err)
	}

	defer func() {
		if err = reader.Close(); err != nil {
			log.Error("could not close console", "error", err)
		}
	}()

	color := cli.ColorEnabled(conf.Console.Color, int(os.Stdout.Fd()))

	engine := tictactoe.NewEngine()
	gameManager := usecase.NewGameManager(logger, engine)
	handler := cli.NewHandler(logger, gameManager, reader, cli.NewDisplay(reader.Stdout(), color), conf.Console.Prompt)

	log.Info("Starting session", "color", color)

	if err = handler.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished", "score", gameManager.Score())

	return nil
}
