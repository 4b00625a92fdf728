package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
)

// WinCombos lists the winning lines in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// CalculateWinner - returns the owner of the first complete line, or EmptyCell.
func CalculateWinner(board entity.Board) entity.Mark {
	combo, ok := WinningLine(board)
	if !ok {
		return entity.EmptyCell
	}

	return board[combo[0]]
}

// WinningLine - returns the first line fully occupied by one player.
func WinningLine(board entity.Board) ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

// IsFull - reports whether every square is occupied.
func IsFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// ClickSquare - places player on square.
// An occupied square or a board that already has a winner yields the same board.
func ClickSquare(board entity.Board, player entity.Mark, square int) (entity.Board, error) {
	if err := validateCell(square); err != nil {
		return board, err
	}

	if board[square] != entity.EmptyCell || CalculateWinner(board) != entity.EmptyCell {
		return board, nil
	}

	// board is a copy, the caller's snapshot stays untouched
	board[square] = player

	return board, nil
}

func validateCell(square int) error {
	if square < 0 || square >= entity.BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, square)
	}

	return nil
}
