package main

import (
	"chat-poll/repositories"
	"chat-poll/services"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,default=./data/badger"`
	StoreTimeout   time.Duration `env:"STORE_TIMEOUT,default=2s"`
	LogLevel       string        `env:"LOG_LEVEL,default=WARN"`
}

// viewer answers a poll for one user straight from the Badger files,
// without going through a running server.
func main() {
	user := flag.String("user", "", "User to poll")
	flag.Parse()
	if *user == "" {
		log.Fatal("-user is required")
	}

	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows opening while the server holds the lock
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Poll
	messages := repositories.NewMessageRepository(db, logger)
	groups := repositories.NewGroupRepository(db, logger)
	resolver := services.NewMembershipResolver(groups, logger, config.StoreTimeout)
	poller := services.NewNotificationPoller(messages, resolver, logger, config.StoreTimeout)

	ctx := context.Background()
	result, err := poller.Poll(ctx, *user)
	if err != nil {
		log.Fatalf("Poll failed: %v", err)
	}
	found, err := messages.GetMessages(ctx, result.MessageIDs)
	if err != nil {
		log.Fatalf("Loading messages failed: %v", err)
	}

	if result.Degraded {
		color.Yellow.Printf("Degraded: %v\n", result.DegradedCause)
	}
	color.Cyan.Printf("%d message(s) addressed to %s\n", len(found), *user)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "At", "From", "To", "Content"})
	table.SetBorder(false)
	for _, m := range found {
		table.Append([]string{m.ID.String(), m.CreatedAt.Format(time.DateTime), m.Sender, m.Recipient.Key(), m.Content})
	}
	table.Render()
	fmt.Println()
}
