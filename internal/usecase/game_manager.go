package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type gameEngine interface {
	IsLegal(row, col int) bool
	Play(row, col int) entity.Result
	ResetGame()
	CurrentPlayer() entity.Cell
	Board() entity.Board
	Outcome() entity.Outcome
}

// GameManager runs the rounds of one local session on top of a game engine.
// Finished rounds are scored and the board is reset before the next move.
type GameManager struct {
	logger *slog.Logger
	engine gameEngine

	roundID string
	score   entity.Score
	newID   func() string
}

func NewGameManager(logger *slog.Logger, engine gameEngine) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),
		engine: engine,
		newID:  uuid.NewString,
	}
	manager.roundID = manager.newID()

	return manager
}

// MakeTurn - plays one move for the current player.
func (that *GameManager) MakeTurn(ctx context.Context, row, col int) (*entity.Turn, error) {
	log := that.logger.With("method", "MakeTurn", "round", that.roundID)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("turn canceled: %w", err)
	}

	pos := entity.Position{Row: row, Col: col}
	if !pos.InBounds() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfBoard, pos)
	}

	if !that.engine.IsLegal(row, col) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrIllegalMove, pos)
	}

	result := that.engine.Play(row, col)
	if !result.Accepted() {
		// only a terminal round rejects a legal cell
		return nil, fmt.Errorf("%w: round %s is %s", apperror.ErrGameFinished, that.roundID, that.engine.Outcome())
	}

	turn := &entity.Turn{
		RoundID: that.roundID,
		Result:  result,
		Board:   that.engine.Board(),
	}

	log.Debug("move played", "player", result.Mover.String(), "position", pos.String(), "result", result.Kind.String())

	if result.IsTerminal() {
		that.finishRound(ctx, result)
	}

	turn.Next = that.engine.CurrentPlayer()

	return turn, nil
}

// Reset - abandons the current round without scoring it.
func (that *GameManager) Reset(ctx context.Context) {
	that.logger.InfoContext(ctx, "round abandoned", "round", that.roundID)
	that.startRound()
}

func (that *GameManager) State() *entity.Snapshot {
	return &entity.Snapshot{
		RoundID: that.roundID,
		Board:   that.engine.Board(),
		Turn:    that.engine.CurrentPlayer(),
		Outcome: that.engine.Outcome(),
	}
}

func (that *GameManager) Score() entity.Score {
	return that.score
}

func (that *GameManager) finishRound(ctx context.Context, result entity.Result) {
	that.score.Record(result)

	if result.Kind == entity.ResultWon {
		that.logger.InfoContext(ctx, "round won", "round", that.roundID, "winner", result.Mover.String())
	} else {
		that.logger.InfoContext(ctx, "round tied", "round", that.roundID)
	}

	that.startRound()
}

func (that *GameManager) startRound() {
	that.engine.ResetGame()
	that.roundID = that.newID()
}
