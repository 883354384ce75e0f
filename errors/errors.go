package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrIdentifierCollision = fmt.Errorf("identifier collision")
	ErrStoreUnavailable    = fmt.Errorf("store unavailable")
	ErrInvalidInput        = fmt.Errorf("invalid input")
	ErrInvalidRecipient    = fmt.Errorf("invalid recipient")
	ErrGroupNotFound       = fmt.Errorf("group not found")
	ErrNotGroupMember      = fmt.Errorf("user is not a member of the group")
	ErrContentTooLong      = fmt.Errorf("content exceeds maximum length")
)
