package main

import (
	"chat-poll/identifier"
	"chat-poll/infrastructure/http/server"
	"chat-poll/moderation"
	"chat-poll/observability"
	"chat-poll/runtime/workers"
	"chat-poll/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the stores, services and workers, then blocks until SIGINT/SIGTERM.
// Returning instead of exiting lets the deferred store close run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Storage
	st, err := openStores(ctx, config, log)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing store...", "driver", config.StoreDriver)
		_ = st.close()
	}()

	// 4. Services
	settings := services.Settings{
		StoreTimeout:     config.StoreTimeout,
		IDRetryAttempts:  config.IDRetryAttempts,
		MaxContentLength: config.MaxContentLength,
		LimitMessages:    config.LimitMessages,
	}
	ids := identifier.NewRandomGenerator()
	resolver := services.NewMembershipResolver(st.members, log, config.StoreTimeout)
	monitoring := observability.NewMonitoring()
	poller := observability.NewMonitoredPoller(
		services.NewNotificationPoller(st.messages, resolver, log, config.StoreTimeout), monitoring)
	replacement, err := moderation.ReplacementRune(config.CharReplacement)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	moderator, err := moderation.NewModerator(splitList(config.CensoredWords), replacement, log)
	if err != nil {
		return err
	}
	messageService := services.NewMessageService(log, ids, st.messages, st.groups, st.members, settings).
		WithContentFilter(moderator)
	groupService := services.NewGroupService(log, ids, st.groups, st.members, settings)
	inboxService := services.NewInboxService(log, poller, st.messages, st.seen, settings)

	// 5. HTTP
	chatServer := server.NewChatServer(log, messageService, groupService, inboxService, splitList(config.CORSAllowedOrigins)).
		WithStats(func() any { return monitoring.GetLatest() })
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)

	// 6. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewHTTPServerWorker(log, address, chatServer.Routes(), config.ShutdownTimeout))
	sup.Add(workers.NewReporterWorker(log, monitoring, config.MetricInterval))
	if st.badger != nil {
		sup.Add(workers.NewValueLogGCWorker(log, st.badger, config.ValueLogGCInterval, config.ValueLogGCRatio))
	}

	log.Info("Starting chat-poll", "address", address, "driver", config.StoreDriver)
	sup.Run(ctx)
	log.Info("Program stopped cleanly")
	return nil
}

// splitList reads a comma separated env value, dropping blanks.
func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}
