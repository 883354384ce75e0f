package repositories

import (
	"chat-poll/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Filter_Unseen_After_Mark_Seen(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewSeenRepository(openTestDB(t))

	// Given Alice acknowledged message 2
	req.NoError(repository.MarkSeen(ctx, "Alice", []domain.MessageID{2}))

	// When filtering 1, 2, 3
	unseen, err := repository.FilterUnseen(ctx, "Alice", []domain.MessageID{1, 2, 3})

	// Then only 2 is dropped, and Bob's view is unaffected
	req.NoError(err)
	req.Equal([]domain.MessageID{1, 3}, unseen)

	unseen, err = repository.FilterUnseen(ctx, "Bob", []domain.MessageID{1, 2, 3})
	req.NoError(err)
	req.Equal([]domain.MessageID{1, 2, 3}, unseen)
}
