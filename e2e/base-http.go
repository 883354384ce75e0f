package e2e

import (
	"bytes"
	"chat-poll/identifier"
	"chat-poll/infrastructure/http/server"
	"chat-poll/repositories"
	"chat-poll/services"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config

	baseURL string
	client  *http.Client
	local   *httptest.Server
	db      *badger.DB
}

// SetupSuite loads the environment configuration and, without a target
// address, boots an in-process server over a temporary Badger store.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.client = &http.Client{Timeout: 5 * time.Second}

	if s.Config.ServerAddr != "" {
		s.baseURL = s.Config.ServerAddr
		return
	}

	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	s.db, err = badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	settings := services.DefaultSettings()
	ids := identifier.NewRandomGenerator()
	messages := repositories.NewMessageRepository(s.db, log)
	groups := repositories.NewGroupRepository(s.db, log)
	seen := repositories.NewSeenRepository(s.db)
	resolver := services.NewMembershipResolver(groups, log, settings.StoreTimeout)
	poller := services.NewNotificationPoller(messages, resolver, log, settings.StoreTimeout)

	chatServer := server.NewChatServer(log,
		services.NewMessageService(log, ids, messages, groups, groups, settings),
		services.NewGroupService(log, ids, groups, groups, settings),
		services.NewInboxService(log, poller, messages, seen, settings),
		[]string{"*"})
	s.local = httptest.NewServer(chatServer.Routes())
	s.baseURL = s.local.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.local != nil {
		s.local.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

// Step prints a colorized header for a scenario step in logs.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Call sends body as JSON, decodes the response into out when given, and returns the status code.
func (s *BaseHTTPSuite) Call(method, path string, body any, out any) int {
	var payload io.Reader
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		s.Require().NoError(err)
		payload = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.baseURL+path, payload)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	s.Require().NoError(err, "Failed to reach chat-poll at "+s.baseURL)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	s.T().Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		s.T().Logf("REQUEST: %s\nRESPONSE: %s", raw, respBody)
	}
	if out != nil && len(respBody) > 0 && resp.StatusCode < http.StatusBadRequest {
		s.Require().NoError(json.Unmarshal(respBody, out), string(respBody))
	}
	return resp.StatusCode
}
