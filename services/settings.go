package services

import (
	"chat-poll/errors"
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Settings groups the tunables shared by the services.
type Settings struct {
	// StoreTimeout bounds every single store operation. Zero disables it.
	StoreTimeout time.Duration
	// IDRetryAttempts is how many identifiers are drawn before giving up on a write.
	IDRetryAttempts int
	// MaxContentLength caps message content in bytes. Zero disables it.
	MaxContentLength int
	// LimitMessages caps the number of messages returned by an inbox read.
	// Nil or a value below one means no cap.
	LimitMessages *int
}

func DefaultSettings() Settings {
	return Settings{
		StoreTimeout:     2 * time.Second,
		IDRetryAttempts:  5,
		MaxContentLength: 4096,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

func validateCommand(cmd any) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
	}
	return nil
}

// storeError keeps domain errors as they are and marks anything else,
// deadlines included, as the store being unavailable.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, errors.ErrInvalidInput),
		stderrors.Is(err, errors.ErrIdentifierCollision),
		stderrors.Is(err, errors.ErrGroupNotFound),
		stderrors.Is(err, errors.ErrStoreUnavailable):
		return err
	}
	return fmt.Errorf("%w: %w", errors.ErrStoreUnavailable, err)
}
