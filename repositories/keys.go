package repositories

import (
	"chat-poll/domain"
	"context"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Key layout. Identifiers are zero padded to 19 digits so keys sort numerically.
// User names and recipient keys are terminated by NUL, which ValidateUsername forbids,
// so that the prefix of "bob" never matches the keys of "bob:x".
//
//	msg:{id}                  -> message record
//	rcpt:{recipient}\x00{id}  -> recipient index (messages.to_user)
//	grp:{id}                  -> group record
//	mbr:{user}\x00{group}     -> group_members, by user
//	gmbr:{group}:{user}       -> group_members, by group
//	seen:{user}\x00{id}       -> acknowledged messages
const (
	messagePrefix     = "msg:"
	recipientPrefix   = "rcpt:"
	groupPrefix       = "grp:"
	memberPrefix      = "mbr:"
	groupMemberPrefix = "gmbr:"
	seenPrefix        = "seen:"
	separator         = "\x00"
)

func messageKey(id domain.MessageID) []byte {
	return []byte(fmt.Sprintf("%s%019d", messagePrefix, id))
}

func recipientIndexPrefix(r domain.Recipient) []byte {
	return []byte(recipientPrefix + r.Key() + separator)
}

func recipientIndexKey(r domain.Recipient, id domain.MessageID) []byte {
	return append(recipientIndexPrefix(r), fmt.Sprintf("%019d", id)...)
}

func groupKey(id domain.GroupID) []byte {
	return []byte(fmt.Sprintf("%s%019d", groupPrefix, id))
}

func memberIndexPrefix(username string) []byte {
	return []byte(memberPrefix + username + separator)
}

func memberKey(m domain.Membership) []byte {
	return append(memberIndexPrefix(m.Username), fmt.Sprintf("%019d", m.GroupID)...)
}

func groupMemberIndexPrefix(id domain.GroupID) []byte {
	return []byte(fmt.Sprintf("%s%019d:", groupMemberPrefix, id))
}

func groupMemberKey(m domain.Membership) []byte {
	return append(groupMemberIndexPrefix(m.GroupID), m.Username...)
}

func seenIndexPrefix(username string) []byte {
	return []byte(seenPrefix + username + separator)
}

func seenKey(username string, id domain.MessageID) []byte {
	return append(seenIndexPrefix(username), fmt.Sprintf("%019d", id)...)
}

// scanSuffixes returns the key remainder after prefix for every key under prefix.
// Values are never fetched. The context is checked between keys.
func scanSuffixes(ctx context.Context, db *badger.DB, prefix []byte) ([]string, error) {
	var suffixes []string
	err := db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			suffixes = append(suffixes, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	return suffixes, err
}

func parsePaddedID(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupted index key suffix %q: %w", s, err)
	}
	return n, nil
}
