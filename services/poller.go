package services

import (
	"chat-poll/contract"
	"chat-poll/domain"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// NotificationPoller computes the messages currently addressed to a user,
// directly or through one of their groups.
//
// Direct messages are the guarantee: failing to read them fails the poll.
// Group fan-out is best effort: when membership or the group lookup fails the
// poll still answers with the direct messages and flags the result as degraded.
type NotificationPoller struct {
	messages contract.IMessageStore
	resolver contract.IMembershipResolver
	log      *slog.Logger
	timeout  time.Duration
}

func NewNotificationPoller(messages contract.IMessageStore, resolver contract.IMembershipResolver,
	log *slog.Logger, timeout time.Duration) NotificationPoller {
	return NotificationPoller{messages: messages, resolver: resolver, log: log, timeout: timeout}
}

func (p NotificationPoller) Poll(ctx context.Context, username string) (domain.PollResult, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return domain.PollResult{}, err
	}

	// Direct lookup and membership resolution are unrelated, run them side by side.
	var (
		direct        []domain.MessageID
		channels      []domain.ChannelToken
		membershipErr error
		g             errgroup.Group
	)
	g.Go(func() error {
		ctx, cancel := withTimeout(ctx, p.timeout)
		defer cancel()
		ids, err := p.messages.FindByRecipientEquals(ctx, domain.UserRecipient(username))
		if err != nil {
			return storeError(err)
		}
		direct = ids
		return nil
	})
	g.Go(func() error {
		channels, membershipErr = p.resolver.GroupsOf(ctx, username)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PollResult{}, fmt.Errorf("direct messages of %s: %w", username, err)
	}

	var result domain.PollResult
	var group []domain.MessageID
	switch {
	case membershipErr != nil:
		result.Degraded, result.DegradedCause = true, membershipErr
	case len(channels) > 0:
		ids, err := p.findGroupMessages(ctx, channels)
		if err != nil {
			result.Degraded, result.DegradedCause = true, storeError(err)
		} else {
			group = ids
		}
	}

	if result.Degraded {
		p.log.Warn("Group enrichment degraded, answering with direct messages only",
			"user", username, "direct", len(direct), "error", result.DegradedCause)
	}
	result.MessageIDs = lo.Uniq(append(direct, group...))
	p.log.Debug("Poll completed", "user", username, "direct", len(direct), "group", len(group),
		"channels", len(channels), "degraded", result.Degraded)
	return result, nil
}

// findGroupMessages is only reached with a non-empty channel set.
func (p NotificationPoller) findGroupMessages(ctx context.Context, channels []domain.ChannelToken) ([]domain.MessageID, error) {
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()
	recipients := lo.Map(channels, func(c domain.ChannelToken, _ int) domain.Recipient {
		return c.Recipient()
	})
	return p.messages.FindByRecipientIn(ctx, recipients)
}
