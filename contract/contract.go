//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-poll/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IIDGenerator hands out identifiers for new records. It never touches storage.
type IIDGenerator interface {
	NewGroupID() domain.GroupID
	NewMessageID() domain.MessageID
}

// IMessageStore is the durable record of all messages.
// Insert reports a duplicate identifier as errors.ErrIdentifierCollision.
// FindByRecipientIn rejects an empty recipient set with errors.ErrInvalidInput.
type IMessageStore interface {
	Insert(ctx context.Context, message domain.Message) error
	FindByRecipientEquals(ctx context.Context, recipient domain.Recipient) ([]domain.MessageID, error)
	FindByRecipientIn(ctx context.Context, recipients []domain.Recipient) ([]domain.MessageID, error)
	GetMessages(ctx context.Context, ids []domain.MessageID) ([]domain.Message, error)
}

type IGroupStore interface {
	InsertGroup(ctx context.Context, group domain.Group) error
	GetGroup(ctx context.Context, id domain.GroupID) (domain.Group, error)
	GetGroups(ctx context.Context, ids []domain.GroupID) ([]domain.Group, error)
}

// IMembershipStore owns the user <-> group relation.
// GroupIDsOf may return duplicates when the backing store holds duplicated rows.
type IMembershipStore interface {
	AddMember(ctx context.Context, membership domain.Membership) error
	RemoveMember(ctx context.Context, membership domain.Membership) error
	GroupIDsOf(ctx context.Context, username string) ([]domain.GroupID, error)
	MembersOf(ctx context.Context, groupID domain.GroupID) ([]string, error)
}

// ISeenStore remembers which messages a user already acknowledged.
type ISeenStore interface {
	MarkSeen(ctx context.Context, username string, ids []domain.MessageID) error
	FilterUnseen(ctx context.Context, username string, ids []domain.MessageID) ([]domain.MessageID, error)
}

type IMembershipResolver interface {
	GroupsOf(ctx context.Context, username string) ([]domain.ChannelToken, error)
}

type INotificationPoller interface {
	Poll(ctx context.Context, username string) (domain.PollResult, error)
}

// IContentFilter rewrites message content before it is stored and reports
// the dictionary words it masked.
type IContentFilter interface {
	Censor(content string) (string, []string)
}
