//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"go-kanban-board/internal/config"
	"go-kanban-board/internal/handler"
	"go-kanban-board/internal/middleware"
	"go-kanban-board/internal/model"
	"go-kanban-board/internal/router"
	"go-kanban-board/internal/service"
)

const testSecret = "integration-secret"

type memUsers struct {
	users map[string]model.User
}

func (s *memUsers) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUsers) FindByID(_ context.Context, id string) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *memUsers) List(_ context.Context) ([]model.PublicUser, error) {
	out := make([]model.PublicUser, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Public())
	}
	return out, nil
}

type memTickets struct {
	tickets map[string]model.Ticket
}

func (s *memTickets) List(_ context.Context, filter model.TicketFilter, _ model.TicketSort) ([]model.Ticket, error) {
	out := make([]model.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *memTickets) FindByID(_ context.Context, id string) (model.Ticket, error) {
	t, ok := s.tickets[id]
	if !ok {
		return model.Ticket{}, model.ErrTicketNotFound
	}
	return t, nil
}

func (s *memTickets) Create(_ context.Context, t model.Ticket) error {
	s.tickets[t.ID] = t
	return nil
}

func (s *memTickets) Update(_ context.Context, t model.Ticket) error {
	if _, ok := s.tickets[t.ID]; !ok {
		return model.ErrTicketNotFound
	}
	s.tickets[t.ID] = t
	return nil
}

func (s *memTickets) Delete(_ context.Context, id string) error {
	if _, ok := s.tickets[id]; !ok {
		return model.ErrTicketNotFound
	}
	delete(s.tickets, id)
	return nil
}

func newBoardServer(t *testing.T, ttl time.Duration) *httptest.Server {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &memUsers{users: map[string]model.User{
		"u-1": {ID: "u-1", Username: "alice", PasswordHash: string(hash)},
	}}
	tickets := &memTickets{tickets: map[string]model.Ticket{
		"t-1": {ID: "t-1", Name: "First ticket", Status: model.StatusTodo},
	}}

	authService := service.NewAuthService(users, testSecret, ttl)
	ticketService := service.NewTicketService(tickets, users)

	cfg := &config.Config{
		ServerPort:       "3001",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        testSecret,
		TokenTTL:         ttl,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	server := httptest.NewServer(router.New(cfg, middleware.NewAuthMiddleware(authService), router.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Ticket: handler.NewTicketHandler(ticketService),
		User:   handler.NewUserHandler(users),
	}))
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, serverURL string, username string, password string) (*http.Response, string) {
	t.Helper()

	payload, err := json.Marshal(model.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	resp, err := http.Post(serverURL+"/auth/login", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if resp.StatusCode != http.StatusOK {
		return resp, ""
	}

	var body model.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body.Token
}

func doAuthRequest(t *testing.T, method string, url string, tokenValue string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if tokenValue != "" {
		req.Header.Set("Authorization", "Bearer "+tokenValue)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func responseMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body model.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Message
}
