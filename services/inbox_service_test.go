package services

import (
	"chat-poll/domain"
	"chat-poll/errors"
	"chat-poll/mocks"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type inboxFixture struct {
	service  *InboxService
	poller   *mocks.MockINotificationPoller
	messages *mocks.MockIMessageStore
	seen     *mocks.MockISeenStore
}

func newInboxFixture(t *testing.T, limit *int) inboxFixture {
	ctrl := gomock.NewController(t)
	f := inboxFixture{
		poller:   mocks.NewMockINotificationPoller(ctrl),
		messages: mocks.NewMockIMessageStore(ctrl),
		seen:     mocks.NewMockISeenStore(ctrl),
	}
	settings := DefaultSettings()
	settings.LimitMessages = limit
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f.service = NewInboxService(log, f.poller, f.messages, f.seen, settings)
	return f
}

func TestInboxService_Unseen(t *testing.T) {
	req := require.New(t)
	limit := 2
	f := newInboxFixture(t, &limit)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// Given four addressed messages, one of which was acknowledged
	f.poller.EXPECT().Poll(gomock.Any(), "Alice").Return(domain.PollResult{MessageIDs: []domain.MessageID{4, 3, 2, 1}}, nil)
	f.seen.EXPECT().FilterUnseen(gomock.Any(), "Alice", []domain.MessageID{4, 3, 2, 1}).Return([]domain.MessageID{4, 3, 2}, nil)
	f.messages.EXPECT().GetMessages(gomock.Any(), []domain.MessageID{4, 3, 2}).Return([]domain.Message{
		{ID: 4, CreatedAt: base.Add(2 * time.Minute)},
		{ID: 3, CreatedAt: base},
		{ID: 2, CreatedAt: base},
	}, nil)

	// When reading the inbox
	inbox, err := f.service.Unseen(context.Background(), "Alice")

	// Then the oldest two come back in order
	req.NoError(err)
	req.Len(inbox.Messages, 2)
	req.Equal(domain.MessageID(2), inbox.Messages[0].ID)
	req.Equal(domain.MessageID(3), inbox.Messages[1].ID)
	req.False(inbox.Degraded)
}

func TestInboxService_Unseen_Empty_Poll(t *testing.T) {
	req := require.New(t)
	f := newInboxFixture(t, nil)

	f.poller.EXPECT().Poll(gomock.Any(), "Alice").Return(domain.PollResult{MessageIDs: []domain.MessageID{}, Degraded: true}, nil)
	f.seen.EXPECT().FilterUnseen(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	inbox, err := f.service.Unseen(context.Background(), "Alice")

	req.NoError(err)
	req.Empty(inbox.Messages)
	req.True(inbox.Degraded)
}

func TestInboxService_Unseen_Poll_Failure(t *testing.T) {
	req := require.New(t)
	f := newInboxFixture(t, nil)
	f.poller.EXPECT().Poll(gomock.Any(), "Alice").Return(domain.PollResult{}, errors.ErrStoreUnavailable)

	_, err := f.service.Unseen(context.Background(), "Alice")

	req.ErrorIs(err, errors.ErrStoreUnavailable)
}

func TestInboxService_Acknowledge(t *testing.T) {
	req := require.New(t)
	f := newInboxFixture(t, nil)

	f.seen.EXPECT().MarkSeen(gomock.Any(), "Alice", []domain.MessageID{1, 2}).Return(nil)
	req.NoError(f.service.Acknowledge(context.Background(), "Alice", []domain.MessageID{1, 2}))

	f.seen.EXPECT().MarkSeen(gomock.Any(), "Bob", gomock.Any()).Return(stderrors.New("closed"))
	req.ErrorIs(f.service.Acknowledge(context.Background(), "Bob", []domain.MessageID{1}), errors.ErrStoreUnavailable)

	req.ErrorIs(f.service.Acknowledge(context.Background(), "Alice", nil), errors.ErrInvalidInput)
}

func TestInboxService_Unseen_Non_Positive_Limit_Is_Uncapped(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for _, limit := range []int{0, -1} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			req := require.New(t)
			f := newInboxFixture(t, &limit)

			// Given two unseen messages for Bob
			f.poller.EXPECT().Poll(gomock.Any(), "Bob").Return(domain.PollResult{MessageIDs: []domain.MessageID{7, 8}}, nil)
			f.seen.EXPECT().FilterUnseen(gomock.Any(), "Bob", []domain.MessageID{7, 8}).Return([]domain.MessageID{7, 8}, nil)
			f.messages.EXPECT().GetMessages(gomock.Any(), []domain.MessageID{7, 8}).Return([]domain.Message{
				{ID: 8, CreatedAt: base.Add(time.Minute)},
				{ID: 7, CreatedAt: base},
			}, nil)

			// When reading the inbox
			var inbox domain.Inbox
			var err error
			req.NotPanics(func() {
				inbox, err = f.service.Unseen(context.Background(), "Bob")
			})

			// Then both messages are returned
			req.NoError(err)
			req.Len(inbox.Messages, 2)
			req.Equal(domain.MessageID(7), inbox.Messages[0].ID)
		})
	}
}
