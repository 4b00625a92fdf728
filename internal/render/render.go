// Package render turns game states into the text shown to the player.
package render

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
)

const rowSize = 3

// Status - returns the line above the board.
func Status(state entity.GameState) string {
	if state.HasWinner() {
		return "Winner: " + string(state.Winner)
	}

	return "Next player: " + string(state.NextPlayer)
}

// MoveLabel - returns the label of the history entry at move.
func MoveLabel(move int) string {
	if move == 0 {
		return "Game start"
	}

	return fmt.Sprintf("Move #%d", move)
}

func Moves(state entity.GameState) []string {
	labels := make([]string, len(state.History))
	for i := range state.History {
		labels[i] = MoveLabel(i)
	}

	return labels
}

// BoardRows - returns the board as three rows such as "X|O| ".
func BoardRows(board entity.Board) [rowSize]string {
	var rows [rowSize]string

	for row := 0; row < rowSize; row++ {
		cells := make([]string, rowSize)
		for col := 0; col < rowSize; col++ {
			cells[col] = string(SquareRune(board[row*rowSize+col]))
		}
		rows[row] = strings.Join(cells, "|")
	}

	return rows
}

// SquareRune - returns the rune drawn for a square; empty squares are blank.
func SquareRune(mark entity.Mark) rune {
	switch mark {
	case entity.PlayerX:
		return 'X'
	case entity.PlayerO:
		return 'O'
	default:
		return ' '
	}
}
