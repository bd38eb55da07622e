// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/internal/adapter"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/tui"
	"github.com/MKhiriev/go-scaffold-api/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) (any, error)
}

type App struct {
	adapter  adapter.ServerAdapter
	browser  *tui.TUI
	commands map[string]command

	out    io.Writer
	logger *logger.Logger
}

// NewApp builds the client around serverAdapter. A non-empty token is
// attached to every authenticated call.
func NewApp(serverAdapter adapter.ServerAdapter, token string, out io.Writer, logger *logger.Logger) *App {
	if token != "" {
		serverAdapter.SetToken(token)
	}

	a := &App{
		adapter: serverAdapter,
		browser: tui.New(serverAdapter, logger),
		out:     out,
		logger:  logger,
	}
	a.commands = map[string]command{
		"health":  {usage: "health", run: a.health},
		"version": {usage: "version", run: a.version},
		"login":   {usage: "login -u <username> -p <password>", run: a.login},
		"me":      {usage: "me", run: a.me},
		"list":    {usage: "list [-limit N]", run: a.list},
		"create":  {usage: "create -name <name> [-description <text>]", run: a.create},
		"get":     {usage: "get <id>", run: a.get},
		"browse":  {usage: "browse", run: a.browse},
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, args[0], a.Usage())
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	result, err := cmd.run(ctx, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if result == nil {
		return nil
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// Usage lists the available commands.
func (a *App) Usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("commands:\n")
	for _, name := range names {
		b.WriteString("  " + a.commands[name].usage + "\n")
	}
	return b.String()
}

func (a *App) health(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Health(ctx)
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Version(ctx)
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	var username, password string

	fs := newFlagSet("login")
	fs.StringVar(&username, "u", "", "username")
	fs.StringVar(&password, "p", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: -u and -p are required", ErrMissingArgs)
	}

	return a.adapter.Login(ctx, username, password)
}

func (a *App) me(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Me(ctx)
}

func (a *App) list(ctx context.Context, args []string) (any, error) {
	var limit int

	fs := newFlagSet("list")
	fs.IntVar(&limit, "limit", 0, "maximum number of items")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return a.adapter.ListItems(ctx, limit)
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	var name, description string

	fs := newFlagSet("create")
	fs.StringVar(&name, "name", "", "item name")
	fs.StringVar(&description, "description", "", "item description")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	request := models.CreateItemRequest{Name: name}
	if description != "" {
		request.Description = &description
	}

	return a.adapter.CreateItem(ctx, request)
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: get takes exactly one item id", ErrMissingArgs)
	}

	return a.adapter.GetItem(ctx, args[0])
}

// browse opens the interactive item browser. Nothing is printed on exit.
func (a *App) browse(ctx context.Context, _ []string) (any, error) {
	if err := a.browser.Run(ctx, nil, nil); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return nil, err
	}
	return nil, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
