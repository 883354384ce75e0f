package services

import (
	"chat-poll/contract"
	"chat-poll/domain"
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// MembershipResolver answers which group channels a user can read.
type MembershipResolver struct {
	store   contract.IMembershipStore
	log     *slog.Logger
	timeout time.Duration
}

func NewMembershipResolver(store contract.IMembershipStore, log *slog.Logger, timeout time.Duration) MembershipResolver {
	return MembershipResolver{store: store, log: log, timeout: timeout}
}

// GroupsOf returns the distinct channel tokens of the user's groups, possibly empty.
// A failing store is reported wrapped in errors.ErrStoreUnavailable.
func (r MembershipResolver) GroupsOf(ctx context.Context, username string) ([]domain.ChannelToken, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	ids, err := r.store.GroupIDsOf(ctx, username)
	if err != nil {
		return nil, storeError(err)
	}
	return lo.Map(lo.Uniq(ids), func(id domain.GroupID, _ int) domain.ChannelToken {
		return id.Channel()
	}), nil
}
