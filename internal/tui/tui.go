// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-scaffold-api/internal/adapter"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the browser before logging in.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, logger: logger}
}

// Run blocks until the user quits the browser. The token obtained through
// the login form stays stored in the adapter.
func (t *TUI) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	finalModel, err := tea.NewProgram(NewModel(ctx, t.adapter), opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(Model)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.screen == screenLogin && t.adapter.Token() == "" {
		return ErrUserQuit
	}

	t.logger.Debug().Msg("browser closed")
	return nil
}
