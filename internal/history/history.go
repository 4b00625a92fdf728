// Package history holds the reducers that move a game from one History to the next.
package history

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/tictactoe"
)

// New - returns the history of a game that has not started yet.
func New() entity.History {
	return entity.History{entity.EmptyBoard()}
}

// NextMovePlayer - X moves when the history length is odd, O when it is even.
func NextMovePlayer(history entity.History) entity.Mark {
	if len(history)%2 == 1 {
		return entity.PlayerX
	}

	return entity.PlayerO
}

// AppendMove - plays square for the next player.
// A rejected click (occupied square, finished game) returns the history unchanged.
func AppendMove(history entity.History, square int) (entity.History, error) {
	board := history.Last()

	newBoard, err := tictactoe.ClickSquare(board, NextMovePlayer(history), square)
	if err != nil {
		return history, fmt.Errorf("failed to append move: %w", err)
	}

	if newBoard == board {
		return history, nil
	}

	next := make(entity.History, len(history), len(history)+1)
	copy(next, history)

	return append(next, newBoard), nil
}

// TruncateToMove - rewinds the game to the snapshot after move.
func TruncateToMove(history entity.History, move int) (entity.History, error) {
	if move < 0 || move >= len(history) {
		return history, fmt.Errorf("%w: move %d of %d", apperror.ErrInvalidMove, move, len(history)-1)
	}

	return slices.Clip(history[:move+1]), nil
}
