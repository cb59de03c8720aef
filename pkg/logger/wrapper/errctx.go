package wrap

import (
	"context"
	"errors"
)

// errorWithLogCtx is a custom error type that wraps an error and includes LogCtx
type errorWithLogCtx struct {
	err    error
	logCtx LogCtx
}

func (e *errorWithLogCtx) Error() string {
	return e.err.Error()
}

// Unwrap allows unwrapping the original error
func (e *errorWithLogCtx) Unwrap() error {
	return e.err
}

// Error wraps an error with the current LogCtx from the context.
// If the error is already wrapped, the LogCtx is refreshed instead.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var e *errorWithLogCtx
	if errors.As(err, &e) {
		if x, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
			e.logCtx = x
		}
		return e
	}

	c := LogCtx{}
	if x, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		c = x
	}
	return &errorWithLogCtx{
		err:    err,
		logCtx: c,
	}
}

// ErrorCtx extracts the LogCtx from an error if it is of type errorWithLogCtx
func ErrorCtx(ctx context.Context, err error) context.Context {
	var e *errorWithLogCtx
	if errors.As(err, &e) && e != nil {
		return context.WithValue(ctx, LogCtxKey, e.logCtx)
	}
	return ctx
}
