// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/adapter"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenList
	screenDetail
	screenCreate
)

// Model is the root bubbletea model of the browser. It routes key presses
// to the active screen and turns adapter calls into commands.
type Model struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	screen  screen
	login   formModel
	create  formModel
	list    listModel
	spinner spinner.Model
	busy    bool
	status  string
	err     error

	copyText func(string) error
}

func NewModel(ctx context.Context, serverAdapter adapter.ServerAdapter) Model {
	m := Model{
		ctx:      ctx,
		adapter:  serverAdapter,
		login:    newLoginForm(),
		create:   newItemForm(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		copyText: clipboard.WriteAll,
	}

	if serverAdapter.Token() != "" {
		m.screen = screenList
		m.list.loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenList {
		return tea.Batch(m.spinner.Tick, m.loadItems())
	}
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loggedInMsg:
		m.busy = false
		if msg.err != nil {
			m.login.err = loginErrorText(msg.err)
			return m, nil
		}
		m.login = newLoginForm()
		m.screen = screenList
		m.list.loading = true
		return m, m.loadItems()

	case itemsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			return m.handleAPIError(msg.err)
		}
		m.list.items = msg.items
		m.list = m.list.move(0)
		return m, nil

	case itemCreatedMsg:
		m.busy = false
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrUnauthorized) {
				return m.handleAPIError(msg.err)
			}
			m.create.err = msg.err.Error()
			return m, nil
		}
		m.create = newItemForm()
		m.screen = screenList
		m.status = "Created item " + msg.id
		m.list.loading = true
		return m, m.loadItems()

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, nil
	}

	return m.updateFocusedForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLogin:
		switch {
		case key.Matches(msg, keys.esc):
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			return m.submitLogin()
		}
		return m.updateFocusedForm(msg)

	case screenCreate:
		switch {
		case key.Matches(msg, keys.esc):
			m.create = newItemForm()
			m.screen = screenList
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submitItem()
		}
		return m.updateFocusedForm(msg)

	case screenDetail:
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenList
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			if item, ok := m.list.current(); ok {
				return m, m.copyID(item.ID)
			}
		}
		return m, nil
	}

	m.status = ""
	m.err = nil
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list = m.list.move(-1)
	case key.Matches(msg, keys.down):
		m.list = m.list.move(1)
	case key.Matches(msg, keys.enter):
		if _, ok := m.list.current(); ok {
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.newItem):
		m.screen = screenCreate
	case key.Matches(msg, keys.reload):
		m.list.loading = true
		return m, m.loadItems()
	case key.Matches(msg, keys.logout):
		m.adapter.SetToken("")
		m.list = listModel{}
		m.screen = screenLogin
	}
	return m, nil
}

func (m Model) updateFocusedForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.login, cmd = m.login.update(msg)
	case screenCreate:
		m.create, cmd = m.create.update(msg)
	}
	return m, cmd
}

// handleAPIError sends the user back to the login form when the server
// rejected the token and shows any other error on the list screen.
func (m Model) handleAPIError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrNoToken) {
		m.adapter.SetToken("")
		m.screen = screenLogin
		m.login.err = "Session expired, please log in again"
		return m, nil
	}

	m.err = err
	return m, nil
}

func (m Model) submitLogin() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	username, password := m.login.value(0), m.login.inputs[1].Value()
	if username == "" || password == "" {
		m.login.err = "Username and password are required"
		return m, nil
	}

	m.busy = true
	m.login.err = ""
	return m, func() tea.Msg {
		_, err := m.adapter.Login(m.ctx, username, password)
		return loggedInMsg{err: err}
	}
}

func (m Model) submitItem() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	request := models.CreateItemRequest{Name: m.create.value(0)}
	if request.Name == "" {
		m.create.err = "Name is required"
		return m, nil
	}
	if description := m.create.value(1); description != "" {
		request.Description = &description
	}

	m.busy = true
	m.create.err = ""
	return m, func() tea.Msg {
		resp, err := m.adapter.CreateItem(m.ctx, request)
		return itemCreatedMsg{id: resp.ID, err: err}
	}
}

func (m Model) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.adapter.ListItems(m.ctx, 0)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m Model) copyID(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: m.copyText(id)}
	}
}

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		body := m.login.View()
		if m.busy {
			body += "\n" + m.spinner.View() + " Logging in..."
		}
		return renderPage("Log in", body, "tab next field  enter submit  esc quit")

	case screenCreate:
		body := m.create.View()
		if m.busy {
			body += "\n" + m.spinner.View() + " Saving..."
		}
		return renderPage("New item", body, "tab next field  enter save  esc cancel")

	case screenDetail:
		item, _ := m.list.current()
		body := renderItemDetail(item)
		body += m.footer()
		return renderPage("Item "+item.ID, body, "c copy id  esc back  q quit")
	}

	title := "Items"
	if m.list.loading {
		title += "  " + m.spinner.View()
	}
	if expiresAt, ok := m.adapter.TokenExpiresAt(); ok {
		title += fmt.Sprintf("  (session until %s)", expiresAt.Local().Format(time.Kitchen))
	}
	return renderPage(title, m.list.View()+m.footer(), "enter open  n new  r reload  l logout  q quit")
}

func (m Model) footer() string {
	switch {
	case m.err != nil:
		return "\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n"
	case m.status != "":
		return "\n" + m.status + "\n"
	}
	return ""
}

func loginErrorText(err error) string {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return "Incorrect username or password"
	}
	return err.Error()
}
