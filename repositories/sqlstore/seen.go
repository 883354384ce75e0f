package sqlstore

import (
	"chat-poll/domain"
	"context"
	"database/sql"

	"github.com/samber/lo"
)

type SeenRepository struct {
	db *sql.DB
}

func NewSeenRepository(db *sql.DB) SeenRepository {
	return SeenRepository{db: db}
}

func (s SeenRepository) MarkSeen(ctx context.Context, username string, ids []domain.MessageID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO seen(username, message_id) VALUES(?,?) ON CONFLICT DO NOTHING`,
			username, int64(id)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s SeenRepository) FilterUnseen(ctx context.Context, username string, ids []domain.MessageID) ([]domain.MessageID, error) {
	seen := make(map[domain.MessageID]struct{})
	for _, chunk := range lo.Chunk(ids, maxInParams) {
		args := append([]any{username}, lo.Map(chunk, func(id domain.MessageID, _ int) any { return int64(id) })...)
		rows, err := s.db.QueryContext(ctx,
			`SELECT message_id FROM seen WHERE username = ? AND message_id IN (`+placeholders(len(chunk))+`)`, args...)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				_ = rows.Close()
				return nil, err
			}
			seen[domain.MessageID(id)] = struct{}{}
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return nil, err
		}
		_ = rows.Close()
	}
	return lo.Filter(ids, func(id domain.MessageID, _ int) bool {
		_, ok := seen[id]
		return !ok
	}), nil
}
