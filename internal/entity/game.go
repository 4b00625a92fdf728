package entity

import "slices"

const BoardSize = 9

// Board is a row-major snapshot of the 3x3 grid. Boards are values: a move produces a new board.
type Board [BoardSize]Mark

// History is the ordered list of board snapshots; index 0 is always the empty board.
// Holders must treat it as read-only, it can be shared between subscribers.
type History []Board

// GameState is what the view-model publishes after every fold step.
type GameState struct {
	History      History `json:"history"`
	CurrentBoard Board   `json:"current_board"`
	Winner       Mark    `json:"winner"`
	NextPlayer   Mark    `json:"next_player"`
}

func EmptyBoard() Board {
	return Board{}
}

// IsEmpty - reports whether no square is occupied.
func (that Board) IsEmpty() bool {
	return that == Board{}
}

// Last - returns the most recent snapshot.
func (that History) Last() Board {
	return that[len(that)-1]
}

// Equal compares two histories snapshot by snapshot.
func (that History) Equal(other History) bool {
	return slices.Equal(that, other)
}

// HasWinner reports whether the state has a winner.
func (that GameState) HasWinner() bool {
	return that.Winner.IsPlayer()
}

// Equal compares two states by value.
func (that GameState) Equal(other GameState) bool {
	return that.CurrentBoard == other.CurrentBoard &&
		that.Winner == other.Winner &&
		that.NextPlayer == other.NextPlayer &&
		that.History.Equal(other.History)
}
