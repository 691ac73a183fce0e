package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"
	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type gameManager interface {
	MakeTurn(ctx context.Context, row, col int) (*entity.Turn, error)
	Reset(ctx context.Context)
	State() *entity.Snapshot
	Score() entity.Score
}

// Handler runs the console prompt loop for one session.
type Handler struct {
	logger  *slog.Logger
	manager gameManager
	reader  lineReader
	display *Display
	prompt  string
}

func NewHandler(logger *slog.Logger, manager gameManager, reader lineReader, display *Display, prompt string) *Handler {
	return &Handler{
		logger:  logger.With("component", "cli"),
		manager: manager,
		reader:  reader,
		display: display,
		prompt:  prompt,
	}
}

// Run - reads commands until quit, end of input or ctx cancellation.
func (that *Handler) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	// closing the reader unblocks a pending Readline
	stop := context.AfterFunc(ctx, func() {
		if err := that.reader.Close(); err != nil {
			log.Error("failed to close reader", "error", err)
		}
	})
	defer stop()

	that.display.Welcome()
	that.display.Board(that.manager.State().Board)

	for {
		that.reader.SetPrompt(that.display.Prompt(that.prompt, that.manager.State().Turn))

		line, err := that.reader.Readline()
		if ctx.Err() != nil {
			log.Info("session interrupted")
			return nil
		}

		switch {
		case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
			log.Info("input closed")
			return nil
		case err != nil:
			return fmt.Errorf("failed to read command: %w", err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			that.display.Error(err)
			continue
		}

		if !that.execute(ctx, cmd) {
			log.Info("player quit")
			return nil
		}
	}
}

// execute - runs one command. Returns false to leave the loop.
func (that *Handler) execute(ctx context.Context, cmd Command) bool {
	switch cmd.Type {
	case CmdQuit:
		that.display.Score(that.manager.Score())
		return false
	case CmdMove:
		that.move(ctx, cmd.Row, cmd.Col)
	case CmdBoard:
		that.display.Board(that.manager.State().Board)
	case CmdScore:
		that.display.Score(that.manager.Score())
	case CmdReset:
		that.manager.Reset(ctx)
		that.display.Notice("Round reset, X starts.")
		that.display.Board(that.manager.State().Board)
	case CmdHelp:
		that.display.Help()
	case CmdNone:
	}

	return true
}

func (that *Handler) move(ctx context.Context, row, col int) {
	turn, err := that.manager.MakeTurn(ctx, row, col)
	switch {
	case errors.Is(err, apperror.ErrOutOfBoard), errors.Is(err, apperror.ErrIllegalMove), errors.Is(err, apperror.ErrGameFinished):
		that.display.Error(err)
		return
	case err != nil:
		that.logger.Error("failed to make turn", "error", err)
		that.display.Error(err)
		return
	}

	that.display.Turn(turn)

	if turn.Result.IsTerminal() {
		that.display.Board(that.manager.State().Board)
	}
}
