package sqlstore

import (
	"bytes"
	"chat-poll/domain"
	"chat-poll/errors"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "chat.db"), time.Second, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMessageRepository_Insert_And_Find(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	at := time.Now().UTC()

	req.NoError(repository.Insert(ctx, domain.Message{ID: 1, Sender: "Alice", Recipient: domain.UserRecipient("Bob"), Content: "hi", CreatedAt: at}))
	req.NoError(repository.Insert(ctx, domain.Message{ID: 2, Sender: "Alice", Recipient: domain.GroupRecipient(5), Content: "all", CreatedAt: at}))
	req.NoError(repository.Insert(ctx, domain.Message{ID: 3, Sender: "Carol", Recipient: domain.GroupRecipient(6), Content: "elsewhere", CreatedAt: at}))

	direct, err := repository.FindByRecipientEquals(ctx, domain.UserRecipient("Bob"))
	req.NoError(err)
	req.Equal([]domain.MessageID{1}, direct)

	group, err := repository.FindByRecipientIn(ctx, []domain.Recipient{domain.GroupRecipient(5), domain.GroupRecipient(5)})
	req.NoError(err)
	req.Equal([]domain.MessageID{2}, group)

	fetched, err := repository.GetMessages(ctx, []domain.MessageID{2})
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(domain.GroupRecipient(5), fetched[0].Recipient)
	req.Equal(at, fetched[0].CreatedAt)
}

func TestMessageRepository_Duplicate_ID_Is_A_Collision(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())
	message := domain.Message{ID: 9, Sender: "Alice", Recipient: domain.UserRecipient("Bob"), Content: "hi", CreatedAt: time.Now().UTC()}
	req.NoError(repository.Insert(ctx, message))

	err := repository.Insert(ctx, message)

	req.ErrorIs(err, errors.ErrIdentifierCollision)
}

func TestMessageRepository_Find_In_Rejects_Empty_Set(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	_, err := repository.FindByRecipientIn(context.Background(), []domain.Recipient{})

	req.ErrorIs(err, errors.ErrInvalidInput)
}

func TestMessageRepository_Find_In_Spans_Several_Chunks(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	// Given more group channels than fit in a single IN list
	var recipients []domain.Recipient
	for i := 1; i <= maxInParams+10; i++ {
		recipients = append(recipients, domain.GroupRecipient(domain.GroupID(i)))
	}
	req.NoError(repository.Insert(ctx, domain.Message{ID: 1, Sender: "Alice", Recipient: domain.GroupRecipient(1), Content: "first chunk", CreatedAt: time.Now().UTC()}))
	req.NoError(repository.Insert(ctx, domain.Message{ID: 2, Sender: "Alice", Recipient: domain.GroupRecipient(maxInParams + 5), Content: "second chunk", CreatedAt: time.Now().UTC()}))

	ids, err := repository.FindByRecipientIn(ctx, recipients)

	req.NoError(err)
	req.ElementsMatch([]domain.MessageID{1, 2}, ids)
}

func TestGroupRepository_Duplicated_Member_Rows(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestDB(t)
	repository := NewGroupRepository(db, slog.Default())
	for _, id := range []domain.GroupID{3, 7} {
		req.NoError(repository.InsertGroup(ctx, domain.Group{ID: id, Name: fmt.Sprintf("group %d", id), Creator: "Alice", CreatedAt: time.Now().UTC()}))
	}

	// Given group_members rows duplicated outside of AddMember
	for _, groupID := range []string{"3", "3", "7", "7"} {
		_, err := db.ExecContext(ctx, `INSERT INTO group_members(username, group_id) VALUES(?, ?)`, "Alice", groupID)
		req.NoError(err)
	}

	ids, err := repository.GroupIDsOf(ctx, "Alice")

	// Then the store reports every row; deduplication is the resolver's job
	req.NoError(err)
	req.ElementsMatch([]domain.GroupID{3, 3, 7, 7}, ids)

	members, err := repository.MembersOf(ctx, 3)
	req.NoError(err)
	req.Equal([]string{"Alice"}, members)
}

func TestGroupRepository_Membership_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewGroupRepository(openTestDB(t), slog.Default())
	group := domain.Group{ID: 5, Name: "climbers", Creator: "Alice", CreatedAt: time.Now().UTC()}
	req.NoError(repository.InsertGroup(ctx, group))
	req.ErrorIs(repository.InsertGroup(ctx, group), errors.ErrIdentifierCollision)

	req.ErrorIs(repository.AddMember(ctx, domain.Membership{Username: "Bob", GroupID: 6}), errors.ErrGroupNotFound)

	req.NoError(repository.AddMember(ctx, domain.Membership{Username: "Bob", GroupID: 5}))
	req.NoError(repository.AddMember(ctx, domain.Membership{Username: "Bob", GroupID: 5}))
	ids, err := repository.GroupIDsOf(ctx, "Bob")
	req.NoError(err)
	req.Equal([]domain.GroupID{5}, ids)

	req.NoError(repository.RemoveMember(ctx, domain.Membership{Username: "Bob", GroupID: 5}))
	ids, err = repository.GroupIDsOf(ctx, "Bob")
	req.NoError(err)
	req.Empty(ids)

	fetched, err := repository.GetGroup(ctx, 5)
	req.NoError(err)
	req.Equal(group, fetched)

	_, err = repository.GetGroup(ctx, 404)
	req.ErrorIs(err, errors.ErrGroupNotFound)
}

func TestSeenRepository_Filter(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSeenRepository(openTestDB(t))

	req.NoError(repository.MarkSeen(ctx, "Alice", []domain.MessageID{2, 2}))
	unseen, err := repository.FilterUnseen(ctx, "Alice", []domain.MessageID{1, 2, 3})

	req.NoError(err)
	req.Equal([]domain.MessageID{1, 3}, unseen)
}

func TestOpen_Journal_Mode(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	// Given a file database, WAL is enabled quietly
	var buf bytes.Buffer
	db, err := Open(ctx, filepath.Join(t.TempDir(), "chat.db"), time.Second, slog.New(slog.NewTextHandler(&buf, nil)))
	req.NoError(err)
	var mode string
	req.NoError(db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	req.Equal("wal", mode)
	req.NotContains(buf.String(), "WAL")
	req.NoError(db.Close())

	// Given an in-memory database, which cannot use WAL, the fallback is reported
	buf.Reset()
	db, err = Open(ctx, ":memory:", time.Second, slog.New(slog.NewTextHandler(&buf, nil)))
	req.NoError(err)
	defer db.Close()
	req.Contains(buf.String(), "SQLite is not running in WAL mode")
	req.Contains(buf.String(), "journal_mode=memory")
}
