package server

import (
	"chat-poll/domain"
	"time"

	"github.com/samber/lo"
)

// Identifiers are 63-bit, they travel as decimal strings so JavaScript clients keep them intact.

type postMessageRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
}

type postGroupMessageRequest struct {
	From    string `json:"from"`
	Content string `json:"content"`
}

type createGroupRequest struct {
	Name    string   `json:"name"`
	Creator string   `json:"creator"`
	Members []string `json:"members"`
}

type joinGroupRequest struct {
	Username string `json:"username"`
}

type acknowledgeRequest struct {
	MessageIDs []string `json:"messageIds"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type groupResponse struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	Name      string    `json:"name"`
	Creator   string    `json:"creator"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}

type notificationResponse struct {
	MessageIDs []string `json:"messageIds"`
	Degraded   bool     `json:"degraded"`
}

type inboxResponse struct {
	Messages []messageResponse `json:"messages"`
	Degraded bool              `json:"degraded"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		From:      m.Sender,
		To:        m.Recipient.Key(),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func toGroupResponse(g domain.GroupView) groupResponse {
	return groupResponse{
		ID:        g.ID.String(),
		Channel:   g.ID.Channel().String(),
		Name:      g.Name,
		Creator:   g.Creator,
		Members:   lo.Ternary(g.Members == nil, []string{}, g.Members),
		CreatedAt: g.CreatedAt,
	}
}

func toNotificationResponse(r domain.PollResult) notificationResponse {
	return notificationResponse{
		MessageIDs: lo.Map(r.MessageIDs, func(id domain.MessageID, _ int) string { return id.String() }),
		Degraded:   r.Degraded,
	}
}

func toInboxResponse(inbox domain.Inbox) inboxResponse {
	return inboxResponse{
		Messages: lo.Map(inbox.Messages, func(m domain.Message, _ int) messageResponse { return toMessageResponse(m) }),
		Degraded: inbox.Degraded,
	}
}
