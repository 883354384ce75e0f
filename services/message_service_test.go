package services

import (
	"chat-poll/domain"
	"chat-poll/errors"
	"chat-poll/mocks"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type messageServiceFixture struct {
	service  *MessageService
	ids      *mocks.MockIIDGenerator
	messages *mocks.MockIMessageStore
	groups   *mocks.MockIGroupStore
	members  *mocks.MockIMembershipStore
}

func newMessageServiceFixture(t *testing.T) messageServiceFixture {
	ctrl := gomock.NewController(t)
	f := messageServiceFixture{
		ids:      mocks.NewMockIIDGenerator(ctrl),
		messages: mocks.NewMockIMessageStore(ctrl),
		groups:   mocks.NewMockIGroupStore(ctrl),
		members:  mocks.NewMockIMembershipStore(ctrl),
	}
	settings := DefaultSettings()
	settings.MaxContentLength = 16
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f.service = NewMessageService(log, f.ids, f.messages, f.groups, f.members, settings)
	return f
}

func TestMessageService_SendDirect(t *testing.T) {
	req := require.New(t)
	f := newMessageServiceFixture(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// Given a first draw that collides
	gomock.InOrder(
		f.ids.EXPECT().NewMessageID().Return(domain.MessageID(11)),
		f.ids.EXPECT().NewMessageID().Return(domain.MessageID(12)),
	)
	gomock.InOrder(
		f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.ErrIdentifierCollision),
		f.messages.EXPECT().Insert(gomock.Any(), domain.Message{
			ID:        12,
			Sender:    "Alice",
			Recipient: domain.UserRecipient("Bob"),
			Content:   "hi",
			CreatedAt: createdAt,
		}).Return(nil),
	)

	// When sending
	message, err := f.service.SendDirect(context.Background(), domain.SendDirectCommand{
		From: "Alice", To: "Bob", Content: "hi", CreatedAt: createdAt,
	})

	// Then the message is stored under the second id
	req.NoError(err)
	req.Equal(domain.MessageID(12), message.ID)
	req.Equal(domain.UserRecipient("Bob"), message.Recipient)
}

func TestMessageService_SendDirect_Collisions_Exhausted(t *testing.T) {
	req := require.New(t)
	f := newMessageServiceFixture(t)
	attempts := DefaultSettings().IDRetryAttempts

	f.ids.EXPECT().NewMessageID().Return(domain.MessageID(11)).Times(attempts)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.ErrIdentifierCollision).Times(attempts)

	_, err := f.service.SendDirect(context.Background(), domain.SendDirectCommand{From: "Alice", To: "Bob", Content: "hi"})

	req.ErrorIs(err, errors.ErrIdentifierCollision)
}

func TestMessageService_SendDirect_Rejects_Invalid_Input(t *testing.T) {
	f := newMessageServiceFixture(t)
	f.ids.EXPECT().NewMessageID().Times(0)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	testCases := []struct {
		name string
		cmd  domain.SendDirectCommand
		want error
	}{
		{"missing sender", domain.SendDirectCommand{To: "Bob", Content: "hi"}, errors.ErrInvalidInput},
		{"missing recipient", domain.SendDirectCommand{From: "Alice", Content: "hi"}, errors.ErrInvalidInput},
		{"empty content", domain.SendDirectCommand{From: "Alice", To: "Bob"}, errors.ErrInvalidInput},
		{"recipient looks like a channel", domain.SendDirectCommand{From: "Alice", To: "group:5", Content: "hi"}, errors.ErrInvalidInput},
		{"content too long", domain.SendDirectCommand{From: "Alice", To: "Bob", Content: strings.Repeat("a", 17)}, errors.ErrContentTooLong},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.SendDirect(context.Background(), tc.cmd)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMessageService_SendToGroup(t *testing.T) {
	req := require.New(t)
	f := newMessageServiceFixture(t)

	// Given Alice is a member of group 5
	f.groups.EXPECT().GetGroup(gomock.Any(), domain.GroupID(5)).Return(domain.Group{ID: 5, Name: "team"}, nil)
	f.members.EXPECT().GroupIDsOf(gomock.Any(), "Alice").Return([]domain.GroupID{3, 5}, nil)
	f.ids.EXPECT().NewMessageID().Return(domain.MessageID(21))
	f.messages.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m domain.Message) error {
			req.Equal(domain.GroupRecipient(5), m.Recipient)
			req.False(m.CreatedAt.IsZero())
			return nil
		})

	// When she posts on the group
	message, err := f.service.SendToGroup(context.Background(), domain.SendGroupCommand{From: "Alice", GroupID: 5, Content: "hello"})

	// Then one message lands on the channel
	req.NoError(err)
	req.Equal(domain.MessageID(21), message.ID)
	req.Equal("group:5", message.Recipient.Key())
}

func TestMessageService_SendToGroup_Not_A_Member(t *testing.T) {
	req := require.New(t)
	f := newMessageServiceFixture(t)

	f.groups.EXPECT().GetGroup(gomock.Any(), domain.GroupID(5)).Return(domain.Group{ID: 5}, nil)
	f.members.EXPECT().GroupIDsOf(gomock.Any(), "Mallory").Return([]domain.GroupID{3}, nil)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.SendToGroup(context.Background(), domain.SendGroupCommand{From: "Mallory", GroupID: 5, Content: "hello"})

	req.ErrorIs(err, errors.ErrNotGroupMember)
}

func TestMessageService_SendToGroup_Unknown_Group(t *testing.T) {
	req := require.New(t)
	f := newMessageServiceFixture(t)

	f.groups.EXPECT().GetGroup(gomock.Any(), domain.GroupID(9)).Return(domain.Group{}, errors.ErrGroupNotFound)
	f.members.EXPECT().GroupIDsOf(gomock.Any(), gomock.Any()).Times(0)
	f.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.SendToGroup(context.Background(), domain.SendGroupCommand{From: "Alice", GroupID: 9, Content: "hello"})

	req.ErrorIs(err, errors.ErrGroupNotFound)
}

func TestMessageService_SendDirect_Censors_Content(t *testing.T) {
	req := require.New(t)
	f := newMessageServiceFixture(t)
	filter := mocks.NewMockIContentFilter(gomock.NewController(t))
	f.service.WithContentFilter(filter)

	filter.EXPECT().Censor("you badger").Return("you ******", []string{"badger"})
	f.ids.EXPECT().NewMessageID().Return(domain.MessageID(5))
	f.messages.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m domain.Message) error {
			req.Equal("you ******", m.Content)
			return nil
		})

	message, err := f.service.SendDirect(context.Background(), domain.SendDirectCommand{From: "Alice", To: "Bob", Content: "you badger"})

	req.NoError(err)
	req.Equal("you ******", message.Content)
}
