//go:generate go run go.uber.org/mock/mockgen -source=group_service.go -destination=../mocks/mock_group_service.go -package=mocks
package services

import (
	"chat-poll/contract"
	"chat-poll/domain"
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

type IGroupService interface {
	CreateGroup(ctx context.Context, cmd domain.CreateGroupCommand) (domain.GroupView, error)
	JoinGroup(ctx context.Context, cmd domain.MembershipCommand) error
	LeaveGroup(ctx context.Context, cmd domain.MembershipCommand) error
	ListGroups(ctx context.Context, username string) ([]domain.GroupView, error)
}

type GroupService struct {
	log      *slog.Logger
	ids      contract.IIDGenerator
	groups   contract.IGroupStore
	members  contract.IMembershipStore
	settings Settings
	now      func() time.Time
}

func NewGroupService(log *slog.Logger, ids contract.IIDGenerator, groups contract.IGroupStore,
	members contract.IMembershipStore, settings Settings) *GroupService {
	return &GroupService{
		log:      log,
		ids:      ids,
		groups:   groups,
		members:  members,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateGroup stores the group under a fresh identifier, then enrols the creator
// and the initial members. If an enrolment fails, the memberships already added
// are removed so the group is reachable by nobody.
func (s *GroupService) CreateGroup(ctx context.Context, cmd domain.CreateGroupCommand) (domain.GroupView, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.GroupView{}, err
	}
	members := lo.Uniq(append([]string{cmd.Creator}, cmd.Members...))
	for _, member := range members {
		if err := domain.ValidateUsername(member); err != nil {
			return domain.GroupView{}, err
		}
	}

	group := domain.Group{Name: cmd.Name, Creator: cmd.Creator, CreatedAt: s.now()}
	id, err := insertWithFreshID(ctx, s.log, s.settings.IDRetryAttempts, s.ids.NewGroupID,
		func(ctx context.Context, id domain.GroupID) error {
			ctx, cancel := withTimeout(ctx, s.settings.StoreTimeout)
			defer cancel()
			group.ID = id
			return s.groups.InsertGroup(ctx, group)
		})
	if err != nil {
		return domain.GroupView{}, err
	}
	group.ID = id

	for i, member := range members {
		if err := s.addMember(ctx, domain.Membership{Username: member, GroupID: id}); err != nil {
			s.rollbackMembers(ctx, id, members[:i])
			return domain.GroupView{}, err
		}
	}
	s.log.Info("Group created", "group", id.String(), "creator", cmd.Creator, "members", len(members))
	return domain.GroupView{Group: group, Members: members}, nil
}

func (s *GroupService) JoinGroup(ctx context.Context, cmd domain.MembershipCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if err := domain.ValidateUsername(cmd.Username); err != nil {
		return err
	}
	return s.addMember(ctx, domain.Membership{Username: cmd.Username, GroupID: cmd.GroupID})
}

func (s *GroupService) LeaveGroup(ctx context.Context, cmd domain.MembershipCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if err := domain.ValidateUsername(cmd.Username); err != nil {
		return err
	}
	return s.removeMember(ctx, domain.Membership{Username: cmd.Username, GroupID: cmd.GroupID})
}

// ListGroups returns the user's groups with their current members.
func (s *GroupService) ListGroups(ctx context.Context, username string) ([]domain.GroupView, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()

	ids, err := s.members.GroupIDsOf(ctx, username)
	if err != nil {
		return nil, storeError(err)
	}
	if len(ids) == 0 {
		return []domain.GroupView{}, nil
	}
	groups, err := s.groups.GetGroups(ctx, lo.Uniq(ids))
	if err != nil {
		return nil, storeError(err)
	}
	views := make([]domain.GroupView, 0, len(groups))
	for _, group := range groups {
		members, err := s.members.MembersOf(ctx, group.ID)
		if err != nil {
			return nil, storeError(err)
		}
		views = append(views, domain.GroupView{Group: group, Members: members})
	}
	return views, nil
}

func (s *GroupService) addMember(ctx context.Context, membership domain.Membership) error {
	ctx, cancel := withTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()
	return storeError(s.members.AddMember(ctx, membership))
}

// rollbackMembers is best effort: failures are logged, the original error wins.
func (s *GroupService) rollbackMembers(ctx context.Context, id domain.GroupID, usernames []string) {
	ctx = context.WithoutCancel(ctx)
	for _, username := range usernames {
		membership := domain.Membership{Username: username, GroupID: id}
		if err := s.removeMember(ctx, membership); err != nil {
			s.log.Warn("Membership rollback failed", "group", id.String(), "user", username, "error", err)
		}
	}
	s.log.Warn("Group creation aborted", "group", id.String(), "rolled_back", len(usernames))
}

func (s *GroupService) removeMember(ctx context.Context, membership domain.Membership) error {
	ctx, cancel := withTimeout(ctx, s.settings.StoreTimeout)
	defer cancel()
	return storeError(s.members.RemoveMember(ctx, membership))
}
