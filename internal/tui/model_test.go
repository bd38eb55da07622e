// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/adapter"
	"github.com/MKhiriev/go-scaffold-api/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	token string

	loginErr  error
	items     []models.Item
	listErr   error
	createErr error
	created   []models.CreateItemRequest
}

func (s *stubAdapter) SetToken(token string) { s.token = token }
func (s *stubAdapter) Token() string         { return s.token }

func (s *stubAdapter) TokenExpiresAt() (time.Time, bool) {
	return time.Time{}, false
}

func (s *stubAdapter) Login(_ context.Context, username, _ string) (models.AccessTokenResponse, error) {
	if s.loginErr != nil {
		return models.AccessTokenResponse{}, s.loginErr
	}
	s.token = "token-for-" + username
	return models.AccessTokenResponse{AccessToken: s.token, TokenType: models.TokenTypeBearer}, nil
}

func (s *stubAdapter) Me(context.Context) (models.MeResponse, error) {
	return models.MeResponse{}, nil
}

func (s *stubAdapter) ListItems(context.Context, int) ([]models.Item, error) {
	return s.items, s.listErr
}

func (s *stubAdapter) CreateItem(_ context.Context, request models.CreateItemRequest) (models.CreateItemResponse, error) {
	if s.createErr != nil {
		return models.CreateItemResponse{}, s.createErr
	}
	s.created = append(s.created, request)
	return models.CreateItemResponse{ID: "9"}, nil
}

func (s *stubAdapter) GetItem(context.Context, string) (models.Item, error) {
	return models.Item{}, adapter.ErrNotFound
}

func (s *stubAdapter) Health(context.Context) (models.HealthResponse, error) {
	return models.HealthResponse{Status: models.StatusOK}, nil
}

func (s *stubAdapter) Version(context.Context) (models.VersionResponse, error) {
	return models.VersionResponse{}, nil
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// send feeds msg to m and, when a command comes back, runs it once and
// feeds its result as well.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)

	if cmd == nil {
		return model
	}
	result := cmd()
	switch result.(type) {
	case loggedInMsg, itemsLoadedMsg, itemCreatedMsg, copiedMsg:
		return send(t, model, result)
	}
	return model
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewModel_StartScreen(t *testing.T) {
	assert.Equal(t, screenLogin, NewModel(context.Background(), &stubAdapter{}).screen)
	assert.Equal(t, screenList, NewModel(context.Background(), &stubAdapter{token: "t"}).screen)
}

func TestLogin_LoadsItems(t *testing.T) {
	stub := &stubAdapter{items: []models.Item{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}}
	m := NewModel(context.Background(), stub)

	m = typeText(t, m, "demo")
	m = send(t, m, keyPress("tab"))
	m = typeText(t, m, "secret")
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "token-for-demo", stub.token)
	assert.Len(t, m.list.items, 2)
	assert.False(t, m.list.loading)
	assert.Contains(t, m.View(), "second")
}

func TestLogin_TypingShortcutLettersGoesToInput(t *testing.T) {
	m := NewModel(context.Background(), &stubAdapter{})

	m = typeText(t, m, "qlnjk")

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "qlnjk", m.login.value(0))
}

func TestLogin_RequiresBothFields(t *testing.T) {
	m := NewModel(context.Background(), &stubAdapter{})

	m = typeText(t, m, "demo")
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, screenLogin, m.screen)
	assert.NotEmpty(t, m.login.err)
	assert.False(t, m.busy)
}

func TestLogin_WrongPassword(t *testing.T) {
	m := NewModel(context.Background(), &stubAdapter{loginErr: adapter.ErrUnauthorized})

	m = typeText(t, m, "demo")
	m = send(t, m, keyPress("tab"))
	m = typeText(t, m, "wrong")
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Incorrect username or password", m.login.err)
}

func TestList_UnauthorizedReturnsToLogin(t *testing.T) {
	stub := &stubAdapter{token: "stale", listErr: adapter.ErrUnauthorized}
	m := NewModel(context.Background(), stub)

	m = send(t, m, keyPress("r"))

	assert.Equal(t, screenLogin, m.screen)
	assert.Empty(t, stub.token)
}

func TestList_OtherErrorStaysOnList(t *testing.T) {
	stub := &stubAdapter{token: "t", listErr: errors.New("boom")}
	m := NewModel(context.Background(), stub)

	m = send(t, m, keyPress("r"))

	assert.Equal(t, screenList, m.screen)
	assert.Contains(t, m.View(), "boom")
}

func TestList_NavigateAndCopy(t *testing.T) {
	stub := &stubAdapter{token: "t", items: []models.Item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}}
	m := NewModel(context.Background(), stub)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m = send(t, m, keyPress("r"))
	m = send(t, m, keyPress("down"))
	m = send(t, m, keyPress("down"))
	m = send(t, m, keyPress("enter"))
	require.Equal(t, screenDetail, m.screen)
	assert.Contains(t, m.View(), "Description: -")

	m = send(t, m, keyPress("c"))
	assert.Equal(t, "2", copied)
	assert.Equal(t, "Copied to clipboard", m.status)

	m = send(t, m, keyPress("esc"))
	assert.Equal(t, screenList, m.screen)
}

func TestCreate_SubmitsAndReloads(t *testing.T) {
	stub := &stubAdapter{token: "t"}
	m := NewModel(context.Background(), stub)

	m = send(t, m, keyPress("n"))
	require.Equal(t, screenCreate, m.screen)

	m = typeText(t, m, "widget")
	m = send(t, m, keyPress("tab"))
	m = typeText(t, m, "blue")
	m = send(t, m, keyPress("enter"))

	require.Len(t, stub.created, 1)
	assert.Equal(t, "widget", stub.created[0].Name)
	require.NotNil(t, stub.created[0].Description)
	assert.Equal(t, "blue", *stub.created[0].Description)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "Created item 9", m.status)
}

func TestCreate_RequiresName(t *testing.T) {
	stub := &stubAdapter{token: "t"}
	m := NewModel(context.Background(), stub)

	m = send(t, m, keyPress("n"))
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, screenCreate, m.screen)
	assert.Equal(t, "Name is required", m.create.err)
	assert.Empty(t, stub.created)
}

func TestCreate_ServerRejection(t *testing.T) {
	stub := &stubAdapter{token: "t", createErr: adapter.ErrUnprocessableEntity}
	m := NewModel(context.Background(), stub)

	m = send(t, m, keyPress("n"))
	m = typeText(t, m, "widget")
	m = send(t, m, keyPress("enter"))

	assert.Equal(t, screenCreate, m.screen)
	assert.NotEmpty(t, m.create.err)
}

func TestLogout(t *testing.T) {
	stub := &stubAdapter{token: "t"}
	m := NewModel(context.Background(), stub)

	m = send(t, m, keyPress("l"))

	assert.Equal(t, screenLogin, m.screen)
	assert.Empty(t, stub.token)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "äö", fitText("äöü", 2))
}
