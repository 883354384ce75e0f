package domain

import (
	"strconv"
	"time"
)

// GroupID is a strictly positive 63-bit identifier, numeric and string-able.
type GroupID int64

func (id GroupID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Channel derives the recipient token for messages addressed to the group.
func (id GroupID) Channel() ChannelToken {
	return ChannelToken{Group: id}
}

func ParseGroupID(s string) (GroupID, error) {
	n, err := parsePositiveID(s)
	return GroupID(n), err
}

type Group struct {
	ID        GroupID
	Name      string
	Creator   string
	CreatedAt time.Time
}

// Membership records that a user belongs to a group.
type Membership struct {
	Username string
	GroupID  GroupID
}

// GroupView is a group together with its current members.
type GroupView struct {
	Group
	Members []string
}
