package viewmodel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/history"
)

const defaultStateBuffer = 64

const (
	eventStart  = "start"
	eventSquare = "square"
	eventMove   = "move"
)

// Inputs are the two event streams a fold consumes.
// A nil channel counts as an input that has already completed.
type Inputs struct {
	ClickSquare <-chan int
	ClickMove   <-chan int
}

type Option func(*options)

type options struct {
	stateBuffer int
	sessionID   string
}

// WithStateBuffer sets the capacity of the state channel.
func WithStateBuffer(size int) Option {
	return func(o *options) {
		if size >= 0 {
			o.stateBuffer = size
		}
	}
}

// WithSessionID sets the id attached to the fold's log records.
func WithSessionID(id string) Option {
	return func(o *options) {
		o.sessionID = id
	}
}

func newOptions(opts []Option) options {
	o := options{
		stateBuffer: defaultStateBuffer,
		sessionID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

type action struct {
	event   string
	index   int
	reducer Reducer
}

// Run - starts one fold over inputs and returns its state stream.
// The first state is emitted immediately. The channel is closed once both inputs
// are closed or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, inputs Inputs, opts ...Option) <-chan entity.GameState {
	return start(ctx, logger, inputs, newOptions(opts), nil)
}

func start(ctx context.Context, logger *slog.Logger, inputs Inputs, o options, onDone func()) <-chan entity.GameState {
	out := make(chan entity.GameState, o.stateBuffer)

	f := &fold{
		log:     logger.With("component", "viewmodel", "session_id", o.sessionID),
		out:     out,
		history: history.New(),
		merge: merger{
			squares: inputs.ClickSquare,
			moves:   inputs.ClickMove,
		},
	}

	go func() {
		defer close(out)
		if onDone != nil {
			defer onDone()
		}

		f.loop(ctx)
	}()

	return out
}

type fold struct {
	log     *slog.Logger
	out     chan<- entity.GameState
	history entity.History
	merge   merger
	steps   int
}

func (that *fold) loop(ctx context.Context) {
	that.log.Debug("fold started")

	if !that.apply(ctx, action{event: eventStart, reducer: Identity}) {
		that.stopped(ctx)
		return
	}

	for {
		act, ok := that.merge.next(ctx)
		if !ok {
			that.stopped(ctx)
			return
		}

		if !that.apply(ctx, act) {
			that.stopped(ctx)
			return
		}
	}
}

// apply - runs one reducer and emits exactly one state, even for a no-op.
func (that *fold) apply(ctx context.Context, act action) bool {
	next, err := act.reducer(that.history)
	if err != nil {
		that.log.Warn("event rejected", "event", act.event, "index", act.index, "error", err)
		next = that.history
	}

	that.history = next
	that.steps++

	select {
	case that.out <- Derive(next):
		return true
	case <-ctx.Done():
		return false
	}
}

func (that *fold) stopped(ctx context.Context) {
	reason := "inputs completed"
	if err := ctx.Err(); err != nil {
		reason = "context done"
		if errors.Is(err, context.DeadlineExceeded) {
			reason = "deadline exceeded"
		}
	}

	that.log.Debug("fold stopped", "reason", reason, "steps", that.steps, "moves", len(that.history)-1)
}

// merger fans the two inputs into one ordered sequence of reducers.
type merger struct {
	squares <-chan int
	moves   <-chan int
}

// next - waits for the next event. When a square click and a move click are both
// ready, the square click is taken first. Returns false once both inputs are
// closed or ctx is done.
func (that *merger) next(ctx context.Context) (action, bool) {
	for that.squares != nil || that.moves != nil {
		select {
		case square, ok := <-that.squares:
			if !ok {
				that.squares = nil
				continue
			}

			return squareAction(square), true
		default:
		}

		select {
		case square, ok := <-that.squares:
			if !ok {
				that.squares = nil
				continue
			}

			return squareAction(square), true
		case move, ok := <-that.moves:
			if !ok {
				that.moves = nil
				continue
			}

			return moveAction(move), true
		case <-ctx.Done():
			return action{}, false
		}
	}

	return action{}, false
}

func squareAction(square int) action {
	return action{event: eventSquare, index: square, reducer: ClickSquareReducer(square)}
}

func moveAction(move int) action {
	return action{event: eventMove, index: move, reducer: ClickMoveReducer(move)}
}
