package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrInvalidMove     = errors.New("invalid move index")
	ErrInvalidEvent    = errors.New("invalid event")
	ErrStreamCompleted = errors.New("stream is already completed")
	ErrNoState         = errors.New("state stream closed without emitting")
	ErrUnknownUI       = errors.New("unknown ui")
)
