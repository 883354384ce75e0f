package sqlstore

import (
	"chat-poll/domain"
	"chat-poll/errors"
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type GroupRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewGroupRepository(db *sql.DB, log *slog.Logger) GroupRepository {
	return GroupRepository{db: db, log: log}
}

func (g GroupRepository) InsertGroup(ctx context.Context, group domain.Group) error {
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO "groups"(id, group_id, name, creator, created_at) VALUES(?,?,?,?,?)`,
		int64(group.ID), group.ID.String(), group.Name, group.Creator, group.CreatedAt.UnixNano(),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: group %s", errors.ErrIdentifierCollision, group.ID)
	}
	return err
}

func (g GroupRepository) GetGroup(ctx context.Context, id domain.GroupID) (domain.Group, error) {
	row := g.db.QueryRowContext(ctx, `SELECT id, name, creator, created_at FROM "groups" WHERE id = ?`, int64(id))
	group, err := scanGroup(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return domain.Group{}, fmt.Errorf("%w: %s", errors.ErrGroupNotFound, id)
	}
	return group, err
}

func (g GroupRepository) GetGroups(ctx context.Context, ids []domain.GroupID) ([]domain.Group, error) {
	var groups []domain.Group
	for _, chunk := range lo.Chunk(ids, maxInParams) {
		args := lo.Map(chunk, func(id domain.GroupID, _ int) any { return int64(id) })
		rows, err := g.db.QueryContext(ctx,
			`SELECT id, name, creator, created_at FROM "groups" WHERE id IN (`+placeholders(len(chunk))+`)`, args...)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			group, err := scanGroup(rows)
			if err != nil {
				_ = rows.Close()
				return nil, err
			}
			groups = append(groups, group)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return nil, err
		}
		_ = rows.Close()
	}
	return groups, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGroup(s scanner) (domain.Group, error) {
	var (
		id        int64
		createdAt int64
		group     domain.Group
	)
	if err := s.Scan(&id, &group.Name, &group.Creator, &createdAt); err != nil {
		return domain.Group{}, err
	}
	group.ID = domain.GroupID(id)
	group.CreatedAt = time.Unix(0, createdAt).UTC()
	return group, nil
}

// AddMember inserts a group_members row unless the same row already exists.
func (g GroupRepository) AddMember(ctx context.Context, membership domain.Membership) error {
	if _, err := g.GetGroup(ctx, membership.GroupID); err != nil {
		return err
	}
	_, err := g.db.ExecContext(ctx,
		`INSERT INTO group_members(username, group_id)
		 SELECT ?, ? WHERE NOT EXISTS (SELECT 1 FROM group_members WHERE username = ? AND group_id = ?)`,
		membership.Username, membership.GroupID.String(), membership.Username, membership.GroupID.String(),
	)
	return err
}

func (g GroupRepository) RemoveMember(ctx context.Context, membership domain.Membership) error {
	_, err := g.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE username = ? AND group_id = ?`,
		membership.Username, membership.GroupID.String(),
	)
	return err
}

// GroupIDsOf returns one entry per group_members row, duplicates included.
func (g GroupRepository) GroupIDsOf(ctx context.Context, username string) ([]domain.GroupID, error) {
	rows, err := g.db.QueryContext(ctx, `SELECT group_id FROM group_members WHERE username = ?`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []domain.GroupID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		id, err := domain.ParseGroupID(raw)
		if err != nil {
			g.log.Warn("Skipping malformed group_members row", "username", username, "group_id", raw)
			continue
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (g GroupRepository) MembersOf(ctx context.Context, groupID domain.GroupID) ([]string, error) {
	rows, err := g.db.QueryContext(ctx, `SELECT DISTINCT username FROM group_members WHERE group_id = ? ORDER BY username`, groupID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		members = append(members, username)
	}
	return members, rows.Err()
}
