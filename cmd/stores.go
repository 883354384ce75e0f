package main

import (
	"chat-poll/contract"
	"chat-poll/repositories"
	"chat-poll/repositories/sqlstore"
	"context"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// stores holds one implementation of each storage contract, all backed by the same database.
type stores struct {
	messages contract.IMessageStore
	groups   contract.IGroupStore
	members  contract.IMembershipStore
	seen     contract.ISeenStore
	// badger is nil with the sqlite driver
	badger *badger.DB
	close  func() error
}

func openStores(ctx context.Context, config Config, log *slog.Logger) (stores, error) {
	switch config.StoreDriver {
	case "badger":
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return stores{}, fmt.Errorf("badger opening failed: %w", err)
		}
		groups := repositories.NewGroupRepository(db, log)
		return stores{
			messages: repositories.NewMessageRepository(db, log),
			groups:   groups,
			members:  groups,
			seen:     repositories.NewSeenRepository(db),
			badger:   db,
			close:    db.Close,
		}, nil
	case "sqlite":
		db, err := sqlstore.Open(ctx, config.SQLiteFilepath, config.StoreTimeout, log)
		if err != nil {
			return stores{}, fmt.Errorf("sqlite opening failed: %w", err)
		}
		groups := sqlstore.NewGroupRepository(db, log)
		return stores{
			messages: sqlstore.NewMessageRepository(db, log),
			groups:   groups,
			members:  groups,
			seen:     sqlstore.NewSeenRepository(db),
			close:    db.Close,
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown STORE_DRIVER %q, expected badger or sqlite", config.StoreDriver)
	}
}
