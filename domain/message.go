// Package domain contains core concepts of the chat system.
// This file defines Message records and their identifiers.
// Messages are immutable once stored.
package domain

import (
	"chat-poll/errors"
	"fmt"
	"strconv"
	"time"
)

// MessageID is an opaque, strictly positive 63-bit identifier.
type MessageID int64

func (id MessageID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseMessageID reads the decimal form produced by String.
func ParseMessageID(s string) (MessageID, error) {
	n, err := parsePositiveID(s)
	return MessageID(n), err
}

func parsePositiveID(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: identifier %q", errors.ErrInvalidInput, s)
	}
	return n, nil
}

// Message represents an immutable chat record addressed to a user or a group channel.
type Message struct {
	ID        MessageID
	Sender    string
	Recipient Recipient
	Content   string
	CreatedAt time.Time
}
