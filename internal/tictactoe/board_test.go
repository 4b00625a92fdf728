package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestCalculateWinner(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: a board where player X has the left column
		board := entity.Board{x, o, e, x, o, e, x, e, e}

		// When: calculating the winner
		winner := CalculateWinner(board)

		// Then: player X should be declared the winner
		require.Equal(t, x, winner)
	})

	t.Run("Winner O on the anti-diagonal", func(t *testing.T) {
		// Given: a board where player O holds 2, 4, 6
		board := entity.Board{x, x, o, e, o, x, o, e, e}

		// When: calculating the winner
		winner := CalculateWinner(board)

		// Then: player O should be declared the winner
		require.Equal(t, o, winner)
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board where nobody has a line yet
		board := entity.Board{x, o, x, e, o, e, x, e, e}

		// When: calculating the winner
		winner := CalculateWinner(board)

		// Then: there should be no winner
		require.Equal(t, e, winner)
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a drawn board
		board := entity.Board{o, x, o, o, x, x, x, o, x}

		// When: calculating the winner
		winner := CalculateWinner(board)

		// Then: there should be no winner and the board should be full
		assert.Equal(t, e, winner)
		assert.True(t, IsFull(board))
	})

	t.Run("First line in scan order wins", func(t *testing.T) {
		// Given: an impossible board where both the top row (X) and middle row (O) are complete
		board := entity.Board{x, x, x, o, o, o, e, e, e}

		// When: calculating the winner
		line, ok := WinningLine(board)

		// Then: the top row should be reported because it is checked first
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, line)
		assert.Equal(t, x, CalculateWinner(board))
	})
}

// Every one of the 3^9 boards: a winner is reported iff some line is owned by that player.
func TestCalculateWinner_AllBoards(t *testing.T) {
	marks := [3]entity.Mark{e, x, o}

	for n := 0; n < 19683; n++ {
		var board entity.Board
		rest := n
		for i := range board {
			board[i] = marks[rest%3]
			rest /= 3
		}

		owners := map[entity.Mark]bool{}
		for _, combo := range WinCombos {
			if board[combo[0]] != e && board[combo[0]] == board[combo[1]] && board[combo[1]] == board[combo[2]] {
				owners[board[combo[0]]] = true
			}
		}

		winner := CalculateWinner(board)
		if len(owners) == 0 {
			require.Equal(t, e, winner, "board %v", board)
			continue
		}

		require.True(t, owners[winner], "board %v: winner %q owns no line", board, winner)
	}
}

func TestClickSquare(t *testing.T) {
	t.Run("Places the player on an empty square", func(t *testing.T) {
		// Given: an empty board
		board := entity.EmptyBoard()

		// When: X clicks square 5
		next, err := ClickSquare(board, x, 5)
		require.NoError(t, err)

		// Then: only square 5 should change and the input board should be untouched
		assert.Equal(t, entity.Board{e, e, e, e, e, x, e, e, e}, next)
		assert.True(t, board.IsEmpty())
	})

	t.Run("Occupied square returns the same board", func(t *testing.T) {
		// Given: a board with X on square 0
		board := entity.Board{x}

		// When: O clicks the same square
		next, err := ClickSquare(board, o, 0)

		// Then: the board should be unchanged
		require.NoError(t, err)
		assert.Equal(t, board, next)
	})

	t.Run("Board with a winner returns the same board", func(t *testing.T) {
		// Given: a board already won by X
		board := entity.Board{x, x, x, o, o, e, e, e, e}

		// When: O clicks an empty square
		next, err := ClickSquare(board, o, 5)

		// Then: the board should be unchanged
		require.NoError(t, err)
		assert.Equal(t, board, next)
	})

	t.Run("Invalid cell index greater than range", func(t *testing.T) {
		board := entity.EmptyBoard()

		next, err := ClickSquare(board, x, 20)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.Equal(t, board, next)
	})

	t.Run("Invalid negative cell index", func(t *testing.T) {
		board := entity.EmptyBoard()

		_, err := ClickSquare(board, x, -1)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})
}
