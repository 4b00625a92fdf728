package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/stream"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/viewmodel"
)

// GameUseCase is what a presentation layer talks to: it emits clicks and renders states.
type GameUseCase interface {
	ClickSquare(ctx context.Context, square int) error
	ClickMove(ctx context.Context, move int) error

	States(ctx context.Context) <-chan entity.GameState

	Close()
}

type gameUseCase struct {
	logger *slog.Logger

	squares   *stream.Subject[int]
	moves     *stream.Subject[int]
	viewModel *viewmodel.GameViewModel
}

func NewGameUseCase(logger *slog.Logger, opts ...viewmodel.Option) GameUseCase {
	squares := stream.NewSubject[int]()
	moves := stream.NewSubject[int]()

	return &gameUseCase{
		logger:    logger.With("component", "usecase"),
		squares:   squares,
		moves:     moves,
		viewModel: viewmodel.New(logger, squares, moves, opts...),
	}
}

// ClickSquare - forwards a square click to every subscribed fold.
func (that *gameUseCase) ClickSquare(ctx context.Context, square int) error {
	if err := that.squares.Publish(ctx, square); err != nil {
		return fmt.Errorf("failed to click square %d: %w", square, err)
	}

	return nil
}

// ClickMove - forwards a move-history click to every subscribed fold.
func (that *gameUseCase) ClickMove(ctx context.Context, move int) error {
	if err := that.moves.Publish(ctx, move); err != nil {
		return fmt.Errorf("failed to click move %d: %w", move, err)
	}

	return nil
}

// States - starts a new game session and returns its state stream.
func (that *gameUseCase) States(ctx context.Context) <-chan entity.GameState {
	that.logger.Debug("new subscription", "squares", that.squares.Subscribers(), "moves", that.moves.Subscribers())

	return that.viewModel.Subscribe(ctx)
}

// Close - completes both event streams; every state stream closes after its last state.
func (that *gameUseCase) Close() {
	that.squares.Complete()
	that.moves.Complete()

	that.logger.Debug("event streams completed")
}
