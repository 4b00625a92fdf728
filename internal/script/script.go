// Package script parses and plays event lists such as "s4, s0, move:1".
package script

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-viewmodel/internal/apperror"
)

type Kind string

const (
	KindSquare Kind = "square"
	KindMove   Kind = "move"
)

type Event struct {
	Kind  Kind
	Index int
}

func (that Event) String() string {
	return fmt.Sprintf("%s:%d", that.Kind, that.Index)
}

// Clicker receives played events, usecase.GameUseCase satisfies it.
type Clicker interface {
	ClickSquare(ctx context.Context, square int) error
	ClickMove(ctx context.Context, move int) error
}

// Parse - splits text on commas and whitespace and parses every token.
func Parse(text string) ([]Event, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	events := make([]Event, 0, len(tokens))
	for i, token := range tokens {
		event, err := ParseEvent(token)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}

		events = append(events, event)
	}

	return events, nil
}

// ParseEvent - parses "square:<i>", "move:<i>" or the "s<i>" and "m<i>" shorthands.
func ParseEvent(token string) (Event, error) {
	token = strings.ToLower(strings.TrimSpace(token))

	var kind Kind
	var rest string

	switch {
	case strings.HasPrefix(token, string(KindSquare)+":"):
		kind, rest = KindSquare, strings.TrimPrefix(token, string(KindSquare)+":")
	case strings.HasPrefix(token, string(KindMove)+":"):
		kind, rest = KindMove, strings.TrimPrefix(token, string(KindMove)+":")
	case strings.HasPrefix(token, "s"):
		kind, rest = KindSquare, token[1:]
	case strings.HasPrefix(token, "m"):
		kind, rest = KindMove, token[1:]
	default:
		return Event{}, fmt.Errorf("%w: %q", apperror.ErrInvalidEvent, token)
	}

	index, err := strconv.Atoi(rest)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidEvent, token, err)
	}

	return Event{Kind: kind, Index: index}, nil
}

// Play - sends events to clicker in order. It stops at the first failed click.
func Play(ctx context.Context, clicker Clicker, events []Event) error {
	for _, event := range events {
		var err error

		switch event.Kind {
		case KindSquare:
			err = clicker.ClickSquare(ctx, event.Index)
		case KindMove:
			err = clicker.ClickMove(ctx, event.Index)
		default:
			err = fmt.Errorf("%w: unknown kind %q", apperror.ErrInvalidEvent, event.Kind)
		}

		if err != nil {
			return fmt.Errorf("failed to play %s: %w", event, err)
		}
	}

	return nil
}
