//go:generate go run go.uber.org/mock/mockgen -source=inbox_service.go -destination=../mocks/mock_inbox_service.go -package=mocks
package services

import (
	"chat-poll/contract"
	"chat-poll/domain"
	"chat-poll/errors"
	"context"
	"fmt"
	"log/slog"
	"sort"
)

type IInboxService interface {
	Poll(ctx context.Context, username string) (domain.PollResult, error)
	Unseen(ctx context.Context, username string) (domain.Inbox, error)
	Acknowledge(ctx context.Context, username string, ids []domain.MessageID) error
}

// InboxService diffs what the poller reports against what the user already acknowledged.
type InboxService struct {
	log      *slog.Logger
	poller   contract.INotificationPoller
	messages contract.IMessageStore
	seen     contract.ISeenStore
	settings Settings
}

func NewInboxService(log *slog.Logger, poller contract.INotificationPoller, messages contract.IMessageStore,
	seen contract.ISeenStore, settings Settings) *InboxService {
	return &InboxService{log: log, poller: poller, messages: messages, seen: seen, settings: settings}
}

func (s *InboxService) Poll(ctx context.Context, username string) (domain.PollResult, error) {
	return s.poller.Poll(ctx, username)
}

// Unseen returns the unacknowledged messages, oldest first, capped by LimitMessages.
// A limit below one leaves the inbox uncapped.
func (s *InboxService) Unseen(ctx context.Context, username string) (domain.Inbox, error) {
	result, err := s.poller.Poll(ctx, username)
	if err != nil {
		return domain.Inbox{}, err
	}
	inbox := domain.Inbox{Messages: []domain.Message{}, Degraded: result.Degraded}
	if len(result.MessageIDs) == 0 {
		return inbox, nil
	}

	ctx, cancel := withTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()
	unseen, err := s.seen.FilterUnseen(ctx, username, result.MessageIDs)
	if err != nil {
		return domain.Inbox{}, storeError(err)
	}
	if len(unseen) == 0 {
		return inbox, nil
	}
	messages, err := s.messages.GetMessages(ctx, unseen)
	if err != nil {
		return domain.Inbox{}, storeError(err)
	}

	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	if limit := s.settings.LimitMessages; limit != nil && *limit > 0 && len(messages) > *limit {
		s.log.Debug(fmt.Sprintf("Maximum of %d message reached", *limit), "user", username, "unseen", len(messages))
		messages = messages[:*limit]
	}
	inbox.Messages = messages
	return inbox, nil
}

func (s *InboxService) Acknowledge(ctx context.Context, username string, ids []domain.MessageID) error {
	if err := domain.ValidateUsername(username); err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: no message to acknowledge", errors.ErrInvalidInput)
	}
	ctx, cancel := withTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()
	return storeError(s.seen.MarkSeen(ctx, username, ids))
}
