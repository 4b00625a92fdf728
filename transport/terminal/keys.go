package terminal

import (
	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/script"
)

// command is what a key press asks the game loop to do.
type command struct {
	quit   bool
	click  *script.Event
	cursor int
}

// keyCommand - maps a key press to a command. moves is the number of entries in the move list.
func keyCommand(ev termbox.Event, cursor, moves int) command {
	cmd := command{cursor: cursor}

	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		cmd.quit = true
	case termbox.KeyArrowUp:
		if cursor > 0 {
			cmd.cursor = cursor - 1
		}
	case termbox.KeyArrowDown:
		if cursor < moves-1 {
			cmd.cursor = cursor + 1
		}
	case termbox.KeyEnter:
		cmd.click = &script.Event{Kind: script.KindMove, Index: cursor}
	}

	switch {
	case ev.Ch == 'q' || ev.Ch == 'Q':
		cmd.quit = true
	case ev.Ch >= '1' && ev.Ch <= '9':
		cmd.click = &script.Event{Kind: script.KindSquare, Index: int(ev.Ch - '1')}
	}

	return cmd
}
