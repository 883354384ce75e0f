package repositories

import (
	"chat-poll/domain"
	"chat-poll/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// GroupRepository stores groups and the group_members relation in BadgerDB.
// Memberships are indexed both by user and by group.
type GroupRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewGroupRepository(db *badger.DB, log *slog.Logger) GroupRepository {
	return GroupRepository{db: db, log: log}
}

// InsertGroup persists a group. A taken identifier is reported as errors.ErrIdentifierCollision.
func (g GroupRepository) InsertGroup(ctx context.Context, group domain.Group) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := groupKey(group.ID)
	err := g.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return errors.ErrIdentifierCollision
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, marshalGroup(group))
	})
	if stderrors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: %v", errors.ErrIdentifierCollision, err)
	}
	return err
}

func (g GroupRepository) GetGroup(ctx context.Context, id domain.GroupID) (domain.Group, error) {
	if err := ctx.Err(); err != nil {
		return domain.Group{}, err
	}
	var group domain.Group
	err := g.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(groupKey(id))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrGroupNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			group, err = unmarshalGroup(val)
			return err
		})
	})
	return group, err
}

// GetGroups loads several groups. Unknown identifiers are skipped.
func (g GroupRepository) GetGroups(ctx context.Context, ids []domain.GroupID) ([]domain.Group, error) {
	var groups []domain.Group
	err := g.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}
			item, err := txn.Get(groupKey(id))
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				group, err := unmarshalGroup(val)
				if err != nil {
					return err
				}
				groups = append(groups, group)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return groups, err
}

// AddMember is idempotent. The referenced group must exist.
func (g GroupRepository) AddMember(ctx context.Context, membership domain.Membership) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(groupKey(membership.GroupID)); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", errors.ErrGroupNotFound, membership.GroupID)
			}
			return err
		}
		if err := txn.Set(memberKey(membership), []byte{}); err != nil {
			return err
		}
		return txn.Set(groupMemberKey(membership), []byte{})
	})
}

func (g GroupRepository) RemoveMember(ctx context.Context, membership domain.Membership) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(memberKey(membership)); err != nil {
			return err
		}
		return txn.Delete(groupMemberKey(membership))
	})
}

func (g GroupRepository) GroupIDsOf(ctx context.Context, username string) ([]domain.GroupID, error) {
	suffixes, err := scanSuffixes(ctx, g.db, memberIndexPrefix(username))
	if err != nil {
		return nil, err
	}
	ids := make([]domain.GroupID, 0, len(suffixes))
	for _, s := range suffixes {
		id, err := parsePaddedID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, domain.GroupID(id))
	}
	return ids, nil
}

func (g GroupRepository) MembersOf(ctx context.Context, groupID domain.GroupID) ([]string, error) {
	return scanSuffixes(ctx, g.db, groupMemberIndexPrefix(groupID))
}
