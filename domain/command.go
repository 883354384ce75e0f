package domain

import (
	"time"
)

type SendDirectCommand struct {
	From      string `validate:"required,max=64"`
	To        string `validate:"required,max=64"`
	Content   string `validate:"required"`
	CreatedAt time.Time
}

type SendGroupCommand struct {
	From      string  `validate:"required,max=64"`
	GroupID   GroupID `validate:"required,gt=0"`
	Content   string  `validate:"required"`
	CreatedAt time.Time
}

type CreateGroupCommand struct {
	Name    string   `validate:"required,max=128"`
	Creator string   `validate:"required,max=64"`
	Members []string `validate:"dive,required,max=64"`
}

type MembershipCommand struct {
	Username string  `validate:"required,max=64"`
	GroupID  GroupID `validate:"required,gt=0"`
}
