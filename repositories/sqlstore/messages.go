package sqlstore

import (
	"chat-poll/domain"
	"chat-poll/errors"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type MessageRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewMessageRepository(db *sql.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

func (m MessageRepository) Insert(ctx context.Context, message domain.Message) error {
	if message.Recipient.IsZero() {
		return fmt.Errorf("%w: message %s has no recipient", errors.ErrInvalidInput, message.ID)
	}
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO messages(id, sender, to_user, content, created_at) VALUES(?,?,?,?,?)`,
		int64(message.ID), message.Sender, message.Recipient.Key(), message.Content, message.CreatedAt.UnixNano(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: message %s", errors.ErrIdentifierCollision, message.ID)
	}
	return err
}

func (m MessageRepository) FindByRecipientEquals(ctx context.Context, recipient domain.Recipient) ([]domain.MessageID, error) {
	if recipient.IsZero() {
		return nil, fmt.Errorf("%w: empty recipient", errors.ErrInvalidInput)
	}
	return m.queryIDs(ctx, `SELECT id FROM messages WHERE to_user = ?`, recipient.Key())
}

// FindByRecipientIn issues one IN query per chunk of recipients.
func (m MessageRepository) FindByRecipientIn(ctx context.Context, recipients []domain.Recipient) ([]domain.MessageID, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: empty recipient set", errors.ErrInvalidInput)
	}
	if lo.ContainsBy(recipients, domain.Recipient.IsZero) {
		return nil, fmt.Errorf("%w: empty recipient in set", errors.ErrInvalidInput)
	}
	keys := lo.Uniq(lo.Map(recipients, func(r domain.Recipient, _ int) string { return r.Key() }))

	var ids []domain.MessageID
	for _, chunk := range lo.Chunk(keys, maxInParams) {
		query := `SELECT id FROM messages WHERE to_user IN (` + placeholders(len(chunk)) + `)`
		found, err := m.queryIDs(ctx, query, lo.ToAnySlice(chunk)...)
		if err != nil {
			return nil, err
		}
		ids = append(ids, found...)
	}
	return lo.Uniq(ids), nil
}

func (m MessageRepository) queryIDs(ctx context.Context, query string, args ...any) ([]domain.MessageID, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []domain.MessageID
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, domain.MessageID(id))
	}
	return ids, rows.Err()
}

// GetMessages loads message records. Unknown identifiers are skipped.
func (m MessageRepository) GetMessages(ctx context.Context, ids []domain.MessageID) ([]domain.Message, error) {
	var messages []domain.Message
	for _, chunk := range lo.Chunk(ids, maxInParams) {
		query := `SELECT id, sender, to_user, content, created_at FROM messages WHERE id IN (` + placeholders(len(chunk)) + `)`
		args := lo.Map(chunk, func(id domain.MessageID, _ int) any { return int64(id) })
		rows, err := m.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		found, err := scanMessages(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, found...)
	}
	return messages, nil
}

func scanMessages(rows *sql.Rows) ([]domain.Message, error) {
	defer rows.Close()
	var messages []domain.Message
	for rows.Next() {
		var (
			id        int64
			toUser    string
			createdAt int64
			message   domain.Message
		)
		if err := rows.Scan(&id, &message.Sender, &toUser, &message.Content, &createdAt); err != nil {
			return nil, err
		}
		recipient, err := domain.ParseRecipient(toUser)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", id, err)
		}
		message.ID = domain.MessageID(id)
		message.Recipient = recipient
		message.CreatedAt = time.Unix(0, createdAt).UTC()
		messages = append(messages, message)
	}
	return messages, rows.Err()
}
