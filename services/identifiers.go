package services

import (
	"chat-poll/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
)

// insertWithFreshID draws an identifier and inserts with it, drawing again each time
// the store reports a collision. After attempts draws the write fails with
// errors.ErrIdentifierCollision; it is never silently dropped.
func insertWithFreshID[ID fmt.Stringer](ctx context.Context, log *slog.Logger, attempts int,
	draw func() ID, insert func(ctx context.Context, id ID) error) (ID, error) {
	var zero ID
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		id := draw()
		err := insert(ctx, id)
		if err == nil {
			return id, nil
		}
		if !stderrors.Is(err, errors.ErrIdentifierCollision) {
			return zero, storeError(err)
		}
		log.Warn("Identifier collision, drawing a new one", "id", id.String(), "attempt", attempt, "max_attempts", attempts)
		if ctx.Err() != nil {
			return zero, storeError(ctx.Err())
		}
	}
	return zero, fmt.Errorf("%w: gave up after %d attempts", errors.ErrIdentifierCollision, attempts)
}
