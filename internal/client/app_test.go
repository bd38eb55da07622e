// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/adapter"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.HandlerFunc, token string) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	serverAdapter, err := adapter.NewHTTPServerAdapter(srv.URL, 2*time.Second, logger.Nop())
	require.NoError(t, err)

	out := new(bytes.Buffer)
	return NewApp(serverAdapter, token, out, logger.Nop()), out
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestRun_NoCommand(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}, "")

	err := app.Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoCommand)
	assert.Contains(t, err.Error(), "login -u <username> -p <password>")
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}, "")

	err := app.Run(context.Background(), []string{"delete"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRun_Health(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		respond(w, http.StatusOK, `{"status":"ok"}`)
	}, "")

	require.NoError(t, app.Run(context.Background(), []string{"health"}))

	var got models.HealthResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, models.StatusOK, got.Status)
}

func TestRun_Login(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "demo", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))
		respond(w, http.StatusOK, `{"access_token":"abc.def.ghi","token_type":"bearer"}`)
	}, "")

	require.NoError(t, app.Run(context.Background(), []string{"login", "-u", "demo", "-p", "secret"}))

	var got models.AccessTokenResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "abc.def.ghi", got.AccessToken)
}

func TestRun_LoginMissingFlags(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}, "")

	err := app.Run(context.Background(), []string{"login", "-u", "demo"})
	assert.ErrorIs(t, err, ErrMissingArgs)
}

func TestRun_LoginUnknownFlag(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}, "")

	assert.Error(t, app.Run(context.Background(), []string{"login", "-x"}))
}

func TestRun_MeSendsToken(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/protected/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		respond(w, http.StatusOK, `{"user":"demo","expires_at":"2026-01-01T00:00:00Z"}`)
	}, "tok")

	require.NoError(t, app.Run(context.Background(), []string{"me"}))

	var got models.MeResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "demo", got.User)
}

func TestRun_MeWithoutToken(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}, "")

	assert.ErrorIs(t, app.Run(context.Background(), []string{"me"}), adapter.ErrNoToken)
}

func TestRun_ListPassesLimit(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		respond(w, http.StatusOK, `[{"id":"1","name":"a","description":null}]`)
	}, "")

	require.NoError(t, app.Run(context.Background(), []string{"list", "-limit", "3"}))

	var got []models.Item
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
	assert.Nil(t, got[0].Description)
}

func TestRun_Create(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body models.CreateItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "widget", body.Name)
		require.NotNil(t, body.Description)
		assert.Equal(t, "blue", *body.Description)

		respond(w, http.StatusOK, `{"id":"7"}`)
	}, "")

	require.NoError(t, app.Run(context.Background(), []string{"create", "-name", "widget", "-description", "blue"}))

	var got models.CreateItemResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "7", got.ID)
}

func TestRun_CreateWithoutDescriptionSendsNoField(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "description")
		respond(w, http.StatusOK, `{"id":"8"}`)
	}, "")

	require.NoError(t, app.Run(context.Background(), []string{"create", "-name", "widget"}))
}

func TestRun_GetNotFound(t *testing.T) {
	app, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/42", r.URL.Path)
		respond(w, http.StatusNotFound, `{"detail":"Item not found"}`)
	}, "")

	err := app.Run(context.Background(), []string{"get", "42"})
	require.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestRun_GetRequiresOneID(t *testing.T) {
	app, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
	}, "")

	assert.ErrorIs(t, app.Run(context.Background(), []string{"get"}), ErrMissingArgs)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"get", "1", "2"}), ErrMissingArgs)
}
