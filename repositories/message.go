package repositories

import (
	"chat-poll/domain"
	"chat-poll/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// MessageRepository stores messages in BadgerDB together with a recipient index,
// the key-value rendition of an index on messages.to_user.
type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// Insert persists the message and its recipient index entry in one transaction.
// An existing record under the same identifier, or a concurrent transaction
// writing it, is reported as errors.ErrIdentifierCollision.
func (m MessageRepository) Insert(ctx context.Context, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if message.Recipient.IsZero() {
		return fmt.Errorf("%w: message %s has no recipient", errors.ErrInvalidInput, message.ID)
	}
	key := messageKey(message.ID)
	err := m.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return errors.ErrIdentifierCollision
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		if err = txn.Set(key, marshalMessage(message)); err != nil {
			return err
		}
		return txn.Set(recipientIndexKey(message.Recipient, message.ID), []byte{})
	})
	if stderrors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: %v", errors.ErrIdentifierCollision, err)
	}
	return err
}

func (m MessageRepository) FindByRecipientEquals(ctx context.Context, recipient domain.Recipient) ([]domain.MessageID, error) {
	if recipient.IsZero() {
		return nil, fmt.Errorf("%w: empty recipient", errors.ErrInvalidInput)
	}
	return m.findByRecipient(ctx, recipient)
}

// FindByRecipientIn performs one prefix scan per distinct recipient.
func (m MessageRepository) FindByRecipientIn(ctx context.Context, recipients []domain.Recipient) ([]domain.MessageID, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: empty recipient set", errors.ErrInvalidInput)
	}
	var ids []domain.MessageID
	for _, recipient := range lo.Uniq(recipients) {
		if recipient.IsZero() {
			return nil, fmt.Errorf("%w: empty recipient in set", errors.ErrInvalidInput)
		}
		found, err := m.findByRecipient(ctx, recipient)
		if err != nil {
			return nil, err
		}
		ids = append(ids, found...)
	}
	return lo.Uniq(ids), nil
}

func (m MessageRepository) findByRecipient(ctx context.Context, recipient domain.Recipient) ([]domain.MessageID, error) {
	suffixes, err := scanSuffixes(ctx, m.db, recipientIndexPrefix(recipient))
	if err != nil {
		return nil, err
	}
	ids := make([]domain.MessageID, 0, len(suffixes))
	for _, s := range suffixes {
		id, err := parsePaddedID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, domain.MessageID(id))
	}
	return ids, nil
}

// GetMessages loads message records. Unknown identifiers are skipped.
func (m MessageRepository) GetMessages(ctx context.Context, ids []domain.MessageID) ([]domain.Message, error) {
	var raw [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := txn.Get(messageKey(id))
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				m.log.Debug("Message not found", "id", id)
				continue
			}
			if err != nil {
				return err
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			raw = append(raw, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(raw))
	for _, b := range raw {
		message, err := unmarshalMessage(b)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}
