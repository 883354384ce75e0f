package repositories

import (
	"chat-poll/domain"
	"context"
	stderrors "errors"

	"github.com/dgraph-io/badger/v4"
)

// SeenRepository records which messages each user acknowledged.
type SeenRepository struct {
	db *badger.DB
}

func NewSeenRepository(db *badger.DB) SeenRepository {
	return SeenRepository{db: db}
}

func (s SeenRepository) MarkSeen(ctx context.Context, username string, ids []domain.MessageID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, id := range ids {
		if err := wb.Set(seenKey(username, id), []byte{}); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// FilterUnseen keeps the identifiers the user has not acknowledged, in input order.
func (s SeenRepository) FilterUnseen(ctx context.Context, username string, ids []domain.MessageID) ([]domain.MessageID, error) {
	unseen := make([]domain.MessageID, 0, len(ids))
	err := s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := txn.Get(seenKey(username, id))
			switch {
			case stderrors.Is(err, badger.ErrKeyNotFound):
				unseen = append(unseen, id)
			case err != nil:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return unseen, nil
}
