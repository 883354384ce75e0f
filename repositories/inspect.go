package repositories

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// InspectRow is a human readable view of one stored key, used by the inspect tool.
type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	ID        string
	From      string
	To        string
	Detail    string
}

// Inspect decodes every key under prefix. Records that fail to decode are
// still listed, as RAW rows with their size.
func Inspect(ctx context.Context, db *badger.DB, prefix string) ([]InspectRow, error) {
	var rows []InspectRow
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				rows = append(rows, inspectRow(key, val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

func inspectRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       printableKey(key),
		Type:      "RAW",
		Timestamp: "--:--:--",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
	switch {
	case strings.HasPrefix(key, messagePrefix):
		m, err := unmarshalMessage(val)
		if err != nil {
			return row
		}
		row.Type = "MESSAGE"
		row.Timestamp = m.CreatedAt.Format(time.DateTime)
		row.ID, row.From, row.To, row.Detail = m.ID.String(), m.Sender, m.Recipient.Key(), m.Content
	case strings.HasPrefix(key, groupPrefix):
		g, err := unmarshalGroup(val)
		if err != nil {
			return row
		}
		row.Type = "GROUP"
		row.Timestamp = g.CreatedAt.Format(time.DateTime)
		row.ID, row.From, row.To, row.Detail = g.ID.String(), g.Creator, g.ID.Channel().String(), g.Name
	case strings.HasPrefix(key, recipientPrefix), strings.HasPrefix(key, memberPrefix),
		strings.HasPrefix(key, groupMemberPrefix), strings.HasPrefix(key, seenPrefix):
		row.Type = "INDEX"
		row.Detail = "-"
	}
	return row
}

func printableKey(key string) string {
	return strings.ReplaceAll(key, separator, "/")
}
