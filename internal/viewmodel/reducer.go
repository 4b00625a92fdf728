package viewmodel

import (
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/history"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/tictactoe"
)

// Reducer maps one History to the next. It represents the effect of a single event.
type Reducer func(entity.History) (entity.History, error)

// Identity primes the fold so the initial state is emitted before any event.
func Identity(h entity.History) (entity.History, error) {
	return h, nil
}

func ClickSquareReducer(square int) Reducer {
	return func(h entity.History) (entity.History, error) {
		return history.AppendMove(h, square)
	}
}

func ClickMoveReducer(move int) Reducer {
	return func(h entity.History) (entity.History, error) {
		return history.TruncateToMove(h, move)
	}
}

// Derive - computes the published state from a history. Nothing is cached between calls.
func Derive(h entity.History) entity.GameState {
	currentBoard := h.Last()

	return entity.GameState{
		History:      h,
		CurrentBoard: currentBoard,
		Winner:       tictactoe.CalculateWinner(currentBoard),
		NextPlayer:   history.NextMovePlayer(h),
	}
}
