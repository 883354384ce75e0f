package errors

import (
	stderrors "errors"
	"net/http"
)

// MapToHTTPStatus translates a service error into the status code sent to clients.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case stderrors.Is(err, ErrInvalidInput), stderrors.Is(err, ErrInvalidRecipient):
		return http.StatusBadRequest
	case stderrors.Is(err, ErrContentTooLong):
		return http.StatusRequestEntityTooLarge
	case stderrors.Is(err, ErrGroupNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, ErrNotGroupMember):
		return http.StatusForbidden
	case stderrors.Is(err, ErrIdentifierCollision):
		return http.StatusConflict
	case stderrors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
