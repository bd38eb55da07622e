// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is a column of labelled text inputs with tab focus cycling.
type formModel struct {
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
}

func newFormModel(labels ...string) formModel {
	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Cursor.SetMode(cursor.CursorStatic)
	}
	inputs[0].Focus()

	return formModel{labels: labels, inputs: inputs}
}

func (f formModel) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// update moves the focus on tab and shift+tab and feeds every other message
// to the focused input.
func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return f.setFocus((f.focus + 1) % len(f.inputs)), nil
		case key.Matches(keyMsg, keys.backtab):
			return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs)), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) setFocus(i int) formModel {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
	return f
}

func (f formModel) View() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	for i, in := range f.inputs {
		b.WriteString(f.labels[i])
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(f.labels[i])+1))
		b.WriteString("[" + in.View() + "]\n")
	}
	if f.err != "" {
		b.WriteString("\n" + errorStyle.Render(f.err) + "\n")
	}
	return b.String()
}

func newLoginForm() formModel {
	f := newFormModel("Username", "Password")
	f.inputs[1].EchoMode = textinput.EchoPassword
	f.inputs[1].EchoCharacter = '*'
	return f
}

func newItemForm() formModel {
	f := newFormModel("Name", "Description")
	f.inputs[0].CharLimit = 255
	f.inputs[1].CharLimit = 1024
	return f
}
