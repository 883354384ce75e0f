package e2e

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type message struct {
	ID string `json:"id"`
	To string `json:"to"`
}

type group struct {
	ID      string   `json:"id"`
	Channel string   `json:"channel"`
	Members []string `json:"members"`
}

type notifications struct {
	MessageIDs []string `json:"messageIds"`
	Degraded   bool     `json:"degraded"`
}

type inbox struct {
	Messages []message `json:"messages"`
}

type testGroupFanoutSuite struct {
	BaseHTTPSuite
}

func TestGroupFanoutSuite(t *testing.T) {
	suite.Run(t, &testGroupFanoutSuite{})
}

func (s *testGroupFanoutSuite) TestDirectAndGroupNotifications() {
	// Unique names so the scenario can run against a shared server
	suffix := uuid.NewString()[:8]
	alice, bob, carol := "alice-"+suffix, "bob-"+suffix, "carol-"+suffix

	var team group
	var direct, broadcast message

	s.Run("Step 1: Nobody has notifications yet", func() {
		s.Step("Poll unknown user")
		var n notifications
		s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/notifications/"+alice, nil, &n))
		s.Require().Empty(n.MessageIDs)
	})

	s.Run("Step 2: Bob creates a group with Alice", func() {
		s.Step("Create group")
		status := s.Call(http.MethodPost, "/groups", map[string]any{
			"name": "team", "creator": bob, "members": []string{alice},
		}, &team)
		s.Require().Equal(http.StatusCreated, status)
		s.Require().ElementsMatch([]string{bob, alice}, team.Members)
		s.Require().Equal("group:"+team.ID, team.Channel)
	})

	s.Run("Step 3: Bob writes to Alice and to the group", func() {
		s.Step("Send messages")
		s.Require().Equal(http.StatusCreated, s.Call(http.MethodPost, "/messages", map[string]string{
			"from": bob, "to": alice, "content": "hello alice",
		}, &direct))
		s.Require().Equal(http.StatusCreated, s.Call(http.MethodPost, "/groups/"+team.ID+"/messages", map[string]string{
			"from": bob, "content": "hello team",
		}, &broadcast))
		s.Require().Equal(team.Channel, broadcast.To)
	})

	s.Run("Step 4: Outsiders cannot post on the group", func() {
		s.Step("Send as non member")
		s.Require().Equal(http.StatusForbidden, s.Call(http.MethodPost, "/groups/"+team.ID+"/messages", map[string]string{
			"from": carol, "content": "let me in",
		}, nil))
	})

	s.Run("Step 5: Alice sees both messages once, Carol none", func() {
		s.Step("Poll members and outsiders")
		var n notifications
		s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/notifications/"+alice, nil, &n))
		s.Require().ElementsMatch([]string{direct.ID, broadcast.ID}, n.MessageIDs)
		s.Require().False(n.Degraded)

		var other notifications
		s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/notifications/"+carol, nil, &other))
		s.Require().Empty(other.MessageIDs)
	})

	s.Run("Step 6: Acknowledged messages leave the inbox", func() {
		s.Step("Read and acknowledge")
		var box inbox
		s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/inbox/"+alice, nil, &box))
		s.Require().Len(box.Messages, 2)

		s.Require().Equal(http.StatusNoContent, s.Call(http.MethodPost, "/inbox/"+alice+"/ack", map[string][]string{
			"messageIds": {direct.ID},
		}, nil))
		s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/inbox/"+alice, nil, &box))
		s.Require().Len(box.Messages, 1)
		s.Require().Equal(broadcast.ID, box.Messages[0].ID)
	})

	s.Run("Step 7: Leaving the group drops the fan-out", func() {
		s.Step("Leave group")
		s.Require().Equal(http.StatusNoContent, s.Call(http.MethodDelete, "/groups/"+team.ID+"/members/"+alice, nil, nil))
		var n notifications
		s.Require().Equal(http.StatusOK, s.Call(http.MethodGet, "/notifications/"+alice, nil, &n))
		s.Require().Equal([]string{direct.ID}, n.MessageIDs)
	})
}
