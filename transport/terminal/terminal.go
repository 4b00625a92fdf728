// Package terminal draws the game with termbox and turns key presses into clicks.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/render"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/script"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/tictactoe"
)

const (
	clickQueueSize = 16

	boardX     = 2
	boardY     = 2
	cellWidth  = 4
	cellHeight = 2
	movesX     = 20

	helpText = "1-9 play  up/down select move  enter go to move  q quit"
	drawText = "No squares left, go back to a move to play on"
)

type uGame interface {
	script.Clicker

	States(ctx context.Context) <-chan entity.GameState
}

type Terminal struct {
	logger *slog.Logger
	uGame  uGame

	state  entity.GameState
	cursor int
}

func New(logger *slog.Logger, uGame uGame) *Terminal {
	return &Terminal{
		logger: logger.With("component", "terminal"),
		uGame:  uGame,
	}
}

// Run - takes over the terminal until the player quits or ctx is done.
func (that *Terminal) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer termbox.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	states := that.uGame.States(ctx)
	keys := make(chan termbox.Event)
	keyErrs := make(chan error, 1)
	clicks := make(chan script.Event, clickQueueSize)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		pollKeys(groupCtx, keys, keyErrs)

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		termbox.Interrupt()

		return nil
	})

	group.Go(func() error {
		return that.sendClicks(groupCtx, clicks)
	})

	group.Go(func() error {
		defer cancel()
		defer close(clicks)

		return that.loop(groupCtx, states, keys, keyErrs, clicks)
	})

	if err := group.Wait(); err != nil {
		return fmt.Errorf("terminal stopped: %w", err)
	}

	return nil
}

// pollKeys - reads terminal events until termbox.Interrupt is called. It never
// stops on its own, so Interrupt always has a receiver.
func pollKeys(ctx context.Context, keys chan<- termbox.Event, errs chan<- error) {
	for {
		ev := termbox.PollEvent()

		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			select {
			case errs <- fmt.Errorf("failed to read key: %w", ev.Err):
			default:
			}
		case termbox.EventKey, termbox.EventResize:
			select {
			case keys <- ev:
			case <-ctx.Done():
			}
		}
	}
}

// sendClicks - forwards clicks one by one so the draw loop never waits on the game.
func (that *Terminal) sendClicks(ctx context.Context, clicks <-chan script.Event) error {
	for click := range clicks {
		err := script.Play(ctx, that.uGame, []script.Event{click})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (that *Terminal) loop(
	ctx context.Context,
	states <-chan entity.GameState,
	keys <-chan termbox.Event,
	keyErrs <-chan error,
	clicks chan<- script.Event,
) error {
	log := that.logger.With("method", "loop")

	for {
		select {
		case state, ok := <-states:
			if !ok {
				log.Debug("state stream closed")
				return nil
			}

			that.state = state
			that.cursor = min(that.cursor, len(state.History)-1)
		case ev := <-keys:
			if ev.Type == termbox.EventKey {
				cmd := keyCommand(ev, that.cursor, len(that.state.History))
				if cmd.quit {
					log.Debug("quit requested")
					return nil
				}

				that.cursor = cmd.cursor

				if cmd.click != nil {
					log.Debug("click", "event", cmd.click.String())

					select {
					case clicks <- *cmd.click:
					case <-ctx.Done():
						return nil
					}
				}
			}
		case err := <-keyErrs:
			return err
		case <-ctx.Done():
			return nil
		}

		if err := that.draw(); err != nil {
			return err
		}
	}
}

func (that *Terminal) draw() error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	printText(boardX, 0, termbox.ColorDefault|termbox.AttrBold, render.Status(that.state))
	that.drawBoard()
	that.drawMoves()
	if !that.state.HasWinner() && tictactoe.IsFull(that.state.CurrentBoard) {
		printText(boardX, 1, termbox.ColorYellow, drawText)
	}
	printText(boardX, boardY+3*cellHeight+1, termbox.ColorBlue, helpText)

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("failed to flush screen: %w", err)
	}

	return nil
}

func (that *Terminal) drawBoard() {
	line, won := tictactoe.WinningLine(that.state.CurrentBoard)

	highlighted := make(map[int]bool, len(line))
	if won {
		for _, square := range line {
			highlighted[square] = true
		}
	}

	for square, mark := range that.state.CurrentBoard {
		x := boardX + (square%3)*cellWidth
		y := boardY + (square/3)*cellHeight

		fg := termbox.ColorDefault
		ch := render.SquareRune(mark)
		if mark == entity.EmptyCell {
			fg, ch = termbox.ColorBlue, rune('1'+square)
		}
		if highlighted[square] {
			fg = termbox.ColorGreen | termbox.AttrBold
		}

		termbox.SetCell(x+1, y, ch, fg, termbox.ColorDefault)
		if square%3 < 2 {
			termbox.SetCell(x+cellWidth-1, y, '|', termbox.ColorDefault, termbox.ColorDefault)
		}
		if square/3 < 2 {
			printText(x, y+1, termbox.ColorDefault, "---")
		}
	}
}

func (that *Terminal) drawMoves() {
	for i, label := range render.Moves(that.state) {
		prefix := "  "
		fg := termbox.ColorDefault
		if i == that.cursor {
			prefix = "> "
			fg = termbox.ColorYellow
		}

		printText(movesX, boardY+i, fg, prefix+label)
	}
}

// printText - writes text starting at x, advancing by each rune's display width.
func printText(x, y int, fg termbox.Attribute, text string) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
