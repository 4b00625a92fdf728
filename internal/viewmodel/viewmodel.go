// Package viewmodel turns square clicks and move-history clicks into a stream of game states.
//
// Each subscription folds its own copy of the game: events are merged in arrival
// order, applied to the history one at a time, and every step is published as a
// GameState derived from the resulting history.
package viewmodel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
)

// Source is a hot stream of indices, such as *stream.Subject[int].
type Source interface {
	Subscribe(ctx context.Context) <-chan int
}

type GameViewModel struct {
	logger  *slog.Logger
	squares Source
	moves   Source
	opts    []Option
}

func New(logger *slog.Logger, squares, moves Source, opts ...Option) *GameViewModel {
	return &GameViewModel{
		logger:  logger,
		squares: squares,
		moves:   moves,
		opts:    opts,
	}
}

// Subscribe - starts an independent fold. Cancelling ctx detaches it from both
// sources and closes the returned channel.
func (that *GameViewModel) Subscribe(ctx context.Context) <-chan entity.GameState {
	ctx, cancel := context.WithCancel(ctx)

	inputs := Inputs{
		ClickSquare: that.squares.Subscribe(ctx),
		ClickMove:   that.moves.Subscribe(ctx),
	}

	return start(ctx, that.logger, inputs, newOptions(that.opts), cancel)
}

// Last - drains states and returns the final one.
func Last(ctx context.Context, states <-chan entity.GameState) (entity.GameState, error) {
	var (
		last entity.GameState
		seen bool
	)

	for {
		select {
		case state, ok := <-states:
			if !ok {
				if !seen {
					return entity.GameState{}, apperror.ErrNoState
				}

				return last, nil
			}

			last, seen = state, true
		case <-ctx.Done():
			return last, fmt.Errorf("waiting for the last state: %w", ctx.Err())
		}
	}
}

// Collect - drains states and returns all of them in emission order.
func Collect(ctx context.Context, states <-chan entity.GameState) ([]entity.GameState, error) {
	var collected []entity.GameState

	for {
		select {
		case state, ok := <-states:
			if !ok {
				return collected, nil
			}

			collected = append(collected, state)
		case <-ctx.Done():
			return collected, fmt.Errorf("collecting states: %w", ctx.Err())
		}
	}
}
