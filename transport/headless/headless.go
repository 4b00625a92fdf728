// Package headless replays an event script through the game and writes every state as a JSON line.
package headless

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/render"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/script"
)

type uGame interface {
	script.Clicker

	States(ctx context.Context) <-chan entity.GameState
	Close()
}

// Line is one record of the output.
type Line struct {
	Step   int              `json:"step"`
	Status string           `json:"status"`
	Board  [3]string        `json:"board"`
	State  entity.GameState `json:"state"`
}

type Replayer struct {
	logger *slog.Logger
	uGame  uGame
	writer io.Writer
}

func New(logger *slog.Logger, uGame uGame, writer io.Writer) *Replayer {
	return &Replayer{
		logger: logger.With("component", "headless"),
		uGame:  uGame,
		writer: writer,
	}
}

// Run - plays events, completes the game and writes states until the state stream closes.
func (that *Replayer) Run(ctx context.Context, events []script.Event) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	states := that.uGame.States(ctx)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer that.uGame.Close()

		if err := script.Play(groupCtx, that.uGame, events); err != nil {
			return fmt.Errorf("failed to replay script: %w", err)
		}

		log.Debug("script played", "events", len(events))

		return nil
	})

	group.Go(func() error {
		return that.writeStates(groupCtx, states)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	return nil
}

func (that *Replayer) writeStates(ctx context.Context, states <-chan entity.GameState) error {
	encoder := json.NewEncoder(that.writer)

	for step := 0; ; step++ {
		select {
		case state, ok := <-states:
			if !ok {
				that.logger.Debug("state stream closed", "steps", step)
				return nil
			}

			line := Line{
				Step:   step,
				Status: render.Status(state),
				Board:  render.BoardRows(state.CurrentBoard),
				State:  state,
			}
			if err := encoder.Encode(line); err != nil {
				return fmt.Errorf("failed to write state %d: %w", step, err)
			}
		case <-ctx.Done():
			return fmt.Errorf("writing states: %w", ctx.Err())
		}
	}
}
