//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"chat-poll/contract"
	"chat-poll/domain"
	"chat-poll/errors"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type IMessageService interface {
	SendDirect(ctx context.Context, cmd domain.SendDirectCommand) (domain.Message, error)
	SendToGroup(ctx context.Context, cmd domain.SendGroupCommand) (domain.Message, error)
}

type MessageService struct {
	log      *slog.Logger
	ids      contract.IIDGenerator
	messages contract.IMessageStore
	groups   contract.IGroupStore
	members  contract.IMembershipStore
	settings Settings
	filter   contract.IContentFilter
	now      func() time.Time
}

func NewMessageService(log *slog.Logger, ids contract.IIDGenerator, messages contract.IMessageStore,
	groups contract.IGroupStore, members contract.IMembershipStore, settings Settings) *MessageService {
	return &MessageService{
		log:      log,
		ids:      ids,
		messages: messages,
		groups:   groups,
		members:  members,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithContentFilter masks content through filter before storing it.
func (s *MessageService) WithContentFilter(filter contract.IContentFilter) *MessageService {
	s.filter = filter
	return s
}

// SendDirect stores a message addressed to a single user.
func (s *MessageService) SendDirect(ctx context.Context, cmd domain.SendDirectCommand) (domain.Message, error) {
	if err := s.validateContent(cmd, cmd.Content); err != nil {
		return domain.Message{}, err
	}
	if err := domain.ValidateUsername(cmd.From); err != nil {
		return domain.Message{}, err
	}
	if err := domain.ValidateUsername(cmd.To); err != nil {
		return domain.Message{}, err
	}
	return s.store(ctx, cmd.From, domain.UserRecipient(cmd.To), cmd.Content, cmd.CreatedAt)
}

// SendToGroup stores a single message on the group channel. Members see it
// through their membership; nothing is copied per member.
func (s *MessageService) SendToGroup(ctx context.Context, cmd domain.SendGroupCommand) (domain.Message, error) {
	if err := s.validateContent(cmd, cmd.Content); err != nil {
		return domain.Message{}, err
	}
	if err := domain.ValidateUsername(cmd.From); err != nil {
		return domain.Message{}, err
	}

	ctx2, cancel := withTimeout(ctx, s.settings.StoreTimeout)
	_, err := s.groups.GetGroup(ctx2, cmd.GroupID)
	cancel()
	if err != nil {
		return domain.Message{}, storeError(err)
	}

	ctx2, cancel = withTimeout(ctx, s.settings.StoreTimeout)
	groupIDs, err := s.members.GroupIDsOf(ctx2, cmd.From)
	cancel()
	if err != nil {
		return domain.Message{}, storeError(err)
	}
	if !lo.Contains(groupIDs, cmd.GroupID) {
		return domain.Message{}, fmt.Errorf("%w: %s in group %s", errors.ErrNotGroupMember, cmd.From, cmd.GroupID)
	}

	return s.store(ctx, cmd.From, domain.GroupRecipient(cmd.GroupID), cmd.Content, cmd.CreatedAt)
}

func (s *MessageService) store(ctx context.Context, sender string, recipient domain.Recipient,
	content string, createdAt time.Time) (domain.Message, error) {
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	if s.filter != nil {
		var masked []string
		if content, masked = s.filter.Censor(content); len(masked) > 0 {
			s.log.Info("Message content censored", "from", sender, "to", recipient.Key(), "words", masked)
		}
	}
	message := domain.Message{
		Sender:    sender,
		Recipient: recipient,
		Content:   content,
		CreatedAt: createdAt.UTC(),
	}
	id, err := insertWithFreshID(ctx, s.log, s.settings.IDRetryAttempts, s.ids.NewMessageID,
		func(ctx context.Context, id domain.MessageID) error {
			ctx, cancel := withTimeout(ctx, s.settings.StoreTimeout)
			defer cancel()
			message.ID = id
			return s.messages.Insert(ctx, message)
		})
	if err != nil {
		return domain.Message{}, err
	}
	message.ID = id
	s.log.Debug("Message stored", "id", id.String(), "from", sender, "to", recipient.Key())
	return message, nil
}

func (s *MessageService) validateContent(cmd any, content string) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if s.settings.MaxContentLength > 0 && len(content) > s.settings.MaxContentLength {
		return fmt.Errorf("%w: %d bytes, max %d", errors.ErrContentTooLong, len(content), s.settings.MaxContentLength)
	}
	return nil
}
