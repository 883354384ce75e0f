package repositories

import (
	"chat-poll/domain"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func Test_Inspect_Decodes_Records(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openTestDB(t)
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// Given a group, a group message and a garbage value under the message prefix
	groups := NewGroupRepository(db, slog.Default())
	req.NoError(groups.InsertGroup(ctx, domain.Group{ID: 5, Name: "team", Creator: "Alice", CreatedAt: at}))
	messages := NewMessageRepository(db, slog.Default())
	req.NoError(messages.Insert(ctx, domain.Message{ID: 1, Sender: "Alice", Recipient: domain.GroupRecipient(5), Content: "hi", CreatedAt: at}))
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(messagePrefix+"garbage"), []byte{0xff})
	}))

	// When inspecting messages
	rows, err := Inspect(ctx, db, messagePrefix)

	// Then decoded rows come with their fields, garbage is kept raw
	req.NoError(err)
	req.Len(rows, 2)
	req.Equal("MESSAGE", rows[0].Type)
	req.Equal("1", rows[0].ID)
	req.Equal("group:5", rows[0].To)
	req.Equal("hi", rows[0].Detail)
	req.Equal("RAW", rows[1].Type)

	rows, err = Inspect(ctx, db, groupPrefix)
	req.NoError(err)
	req.Len(rows, 1)
	req.Equal("team", rows[0].Detail)

	rows, err = Inspect(ctx, db, recipientPrefix)
	req.NoError(err)
	req.Len(rows, 1)
	req.Equal("INDEX", rows[0].Type)
	req.NotContains(rows[0].Key, "\x00")
}
