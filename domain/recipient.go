package domain

import (
	"chat-poll/errors"
	"fmt"
	"strconv"
	"strings"
)

// GroupChannelPrefix marks a recipient key as a group channel token.
const GroupChannelPrefix = "group:"

type RecipientKind uint8

const (
	RecipientUnknown RecipientKind = iota
	RecipientUser
	RecipientGroup
)

func (k RecipientKind) String() string {
	switch k {
	case RecipientUser:
		return "user"
	case RecipientGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Recipient is either a single user or a group channel, never both.
// The zero value is invalid.
type Recipient struct {
	kind  RecipientKind
	user  string
	group GroupID
}

func UserRecipient(username string) Recipient {
	return Recipient{kind: RecipientUser, user: username}
}

func GroupRecipient(id GroupID) Recipient {
	return Recipient{kind: RecipientGroup, group: id}
}

func (r Recipient) Kind() RecipientKind {
	return r.kind
}

func (r Recipient) User() (string, bool) {
	return r.user, r.kind == RecipientUser
}

func (r Recipient) Group() (GroupID, bool) {
	return r.group, r.kind == RecipientGroup
}

func (r Recipient) IsZero() bool {
	return r.kind == RecipientUnknown
}

// Key is the storage form of the recipient: the user name itself,
// or the channel token "group:<id>".
func (r Recipient) Key() string {
	switch r.kind {
	case RecipientUser:
		return r.user
	case RecipientGroup:
		return r.group.Channel().String()
	default:
		return ""
	}
}

func (r Recipient) String() string {
	return r.Key()
}

// ParseRecipient is the inverse of Recipient.Key.
func ParseRecipient(key string) (Recipient, error) {
	if rest, ok := strings.CutPrefix(key, GroupChannelPrefix); ok {
		id, err := ParseGroupID(rest)
		if err != nil {
			return Recipient{}, fmt.Errorf("%w: bad channel token %q", errors.ErrInvalidRecipient, key)
		}
		return GroupRecipient(id), nil
	}
	if err := ValidateUsername(key); err != nil {
		return Recipient{}, err
	}
	return UserRecipient(key), nil
}

// ChannelToken addresses a group channel. Its string form is "group:<id>".
type ChannelToken struct {
	Group GroupID
}

func (c ChannelToken) String() string {
	return GroupChannelPrefix + strconv.FormatInt(int64(c.Group), 10)
}

func (c ChannelToken) Recipient() Recipient {
	return GroupRecipient(c.Group)
}

// ValidateUsername rejects names that could be mistaken for a channel token
// or that would break the NUL separated storage keys.
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: empty user identity", errors.ErrInvalidInput)
	case strings.HasPrefix(username, GroupChannelPrefix):
		return fmt.Errorf("%w: user identity %q uses the group channel prefix", errors.ErrInvalidInput, username)
	case strings.ContainsRune(username, 0):
		return fmt.Errorf("%w: user identity contains NUL", errors.ErrInvalidInput)
	}
	return nil
}
