package server

import (
	"chat-poll/domain"
	"chat-poll/errors"
	"chat-poll/services"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/samber/lo"
)

const defaultMaxBodyBytes = 1 << 20

type ChatServer struct {
	log            *slog.Logger
	messageService services.IMessageService
	groupService   services.IGroupService
	inboxService   services.IInboxService
	allowedOrigins []string
	maxBodyBytes   int64
	stats          func() any
}

func NewChatServer(log *slog.Logger, messageService services.IMessageService, groupService services.IGroupService,
	inboxService services.IInboxService, allowedOrigins []string) *ChatServer {
	return &ChatServer{
		log:            log,
		messageService: messageService,
		groupService:   groupService,
		inboxService:   inboxService,
		allowedOrigins: allowedOrigins,
		maxBodyBytes:   defaultMaxBodyBytes,
	}
}

// WithStats exposes the given snapshot on GET /stats.
func (s *ChatServer) WithStats(stats func() any) *ChatServer {
	s.stats = stats
	return s
}

func (s *ChatServer) Routes() http.Handler {
	standard := alice.New(s.recoverPanic, s.logRequest, secureHeaders, makeResponseJSON)

	mux := pat.New()
	mux.Post("/messages", standard.ThenFunc(s.PostMessage))

	mux.Post("/groups", standard.ThenFunc(s.CreateGroup))
	mux.Get("/groups/user/:username", standard.ThenFunc(s.ListGroups))
	mux.Post("/groups/:id/members", standard.ThenFunc(s.JoinGroup))
	mux.Del("/groups/:id/members/:username", standard.ThenFunc(s.LeaveGroup))
	mux.Post("/groups/:id/messages", standard.ThenFunc(s.PostGroupMessage))

	mux.Get("/notifications/:username", standard.ThenFunc(s.Notifications))
	mux.Get("/inbox/:username", standard.ThenFunc(s.Inbox))
	mux.Post("/inbox/:username/ack", standard.ThenFunc(s.Acknowledge))

	if s.stats != nil {
		mux.Get("/stats", standard.ThenFunc(func(w http.ResponseWriter, _ *http.Request) {
			s.writeJSON(w, http.StatusOK, s.stats())
		}))
	}

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(mux)
}

// PostMessage sends to a user or, when "to" is a channel token, to a group.
func (s *ChatServer) PostMessage(w http.ResponseWriter, r *http.Request) {
	var body postMessageRequest
	if !s.decode(w, r, &body) {
		return
	}
	recipient, err := domain.ParseRecipient(body.To)
	if err != nil {
		s.clientError(w, r, err)
		return
	}

	var message domain.Message
	if groupID, ok := recipient.Group(); ok {
		message, err = s.messageService.SendToGroup(r.Context(), domain.SendGroupCommand{
			From: body.From, GroupID: groupID, Content: body.Content,
		})
	} else {
		message, err = s.messageService.SendDirect(r.Context(), domain.SendDirectCommand{
			From: body.From, To: body.To, Content: body.Content,
		})
	}
	if err != nil {
		s.clientError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toMessageResponse(message))
}

func (s *ChatServer) PostGroupMessage(w http.ResponseWriter, r *http.Request) {
	groupID, ok := s.groupIDParam(w, r)
	if !ok {
		return
	}
	var body postGroupMessageRequest
	if !s.decode(w, r, &body) {
		return
	}
	message, err := s.messageService.SendToGroup(r.Context(), domain.SendGroupCommand{
		From: body.From, GroupID: groupID, Content: body.Content,
	})
	if err != nil {
		s.clientError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toMessageResponse(message))
}

func (s *ChatServer) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var body createGroupRequest
	if !s.decode(w, r, &body) {
		return
	}
	view, err := s.groupService.CreateGroup(r.Context(), domain.CreateGroupCommand{
		Name: body.Name, Creator: body.Creator, Members: body.Members,
	})
	if err != nil {
		s.clientError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toGroupResponse(view))
}

func (s *ChatServer) ListGroups(w http.ResponseWriter, r *http.Request) {
	views, err := s.groupService.ListGroups(r.Context(), r.URL.Query().Get(":username"))
	if err != nil {
		s.clientError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, lo.Map(views, func(v domain.GroupView, _ int) groupResponse {
		return toGroupResponse(v)
	}))
}

func (s *ChatServer) JoinGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := s.groupIDParam(w, r)
	if !ok {
		return
	}
	var body joinGroupRequest
	if !s.decode(w, r, &body) {
		return
	}
	if err := s.groupService.JoinGroup(r.Context(), domain.MembershipCommand{Username: body.Username, GroupID: groupID}); err != nil {
		s.clientError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *ChatServer) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := s.groupIDParam(w, r)
	if !ok {
		return
	}
	cmd := domain.MembershipCommand{Username: r.URL.Query().Get(":username"), GroupID: groupID}
	if err := s.groupService.LeaveGroup(r.Context(), cmd); err != nil {
		s.clientError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notifications reports the identifiers currently addressed to the user.
// A degraded answer is still a 200, flagged in the body.
func (s *ChatServer) Notifications(w http.ResponseWriter, r *http.Request) {
	result, err := s.inboxService.Poll(r.Context(), r.URL.Query().Get(":username"))
	if err != nil {
		s.clientError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toNotificationResponse(result))
}

func (s *ChatServer) Inbox(w http.ResponseWriter, r *http.Request) {
	inbox, err := s.inboxService.Unseen(r.Context(), r.URL.Query().Get(":username"))
	if err != nil {
		s.clientError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toInboxResponse(inbox))
}

func (s *ChatServer) Acknowledge(w http.ResponseWriter, r *http.Request) {
	var body acknowledgeRequest
	if !s.decode(w, r, &body) {
		return
	}
	ids := make([]domain.MessageID, 0, len(body.MessageIDs))
	for _, raw := range body.MessageIDs {
		id, err := domain.ParseMessageID(raw)
		if err != nil {
			s.clientError(w, r, err)
			return
		}
		ids = append(ids, id)
	}
	if err := s.inboxService.Acknowledge(r.Context(), r.URL.Query().Get(":username"), ids); err != nil {
		s.clientError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *ChatServer) groupIDParam(w http.ResponseWriter, r *http.Request) (domain.GroupID, bool) {
	id, err := domain.ParseGroupID(r.URL.Query().Get(":id"))
	if err != nil {
		s.clientError(w, r, err)
		return 0, false
	}
	return id, true
}

func (s *ChatServer) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		s.clientError(w, r, fmt.Errorf("%w: request body: %v", errors.ErrInvalidInput, err))
		return false
	}
	return true
}

func (s *ChatServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", "error", err)
	}
}

func (s *ChatServer) clientError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.MapToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.serverError(w, r, err)
		return
	}
	s.log.Debug("Request rejected", "request_id", requestID(r.Context()), "status", status, "error", err)
	s.writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: requestID(r.Context())})
}

// serverError hides the cause from the client; it is only logged.
func (s *ChatServer) serverError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.MapToHTTPStatus(err)
	if status < http.StatusInternalServerError {
		status = http.StatusInternalServerError
	}
	s.log.Error("Request failed", "request_id", requestID(r.Context()), "status", status, "error", err)
	s.writeJSON(w, status, errorResponse{Error: http.StatusText(status), RequestID: requestID(r.Context())})
}
