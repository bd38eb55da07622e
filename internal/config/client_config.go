// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const (
	defaultClientServerAddress = "http://localhost:8080"
	defaultClientTimeout       = 10 * time.Second
)

// ClientConfig holds the settings of the command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the API server. A bare "host:port"
	// is accepted and treated as http.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// Timeout bounds every request made by the client.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Token is the bearer token sent with authenticated commands.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`

	// LogLevel filters client diagnostics written to stderr.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig loads the client settings from CLIENT_* environment
// variables and then from the leading flags of args, flags taking
// precedence. The arguments left after the flags are returned as the
// command to run.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := new(ClientConfig)
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, c := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, c, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = defaultClientServerAddress
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultClientTimeout
	}

	return cfg, rest, nil
}

// parseClientFlags parses the global client flags:
//
//	-a server base URL
//	-timeout request timeout (e.g., "5s")
//	-token bearer token
//	-log-level minimal log level
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := new(ClientConfig)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerAddress, "a", "", "Server base URL")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.Token, "token", "", "Bearer token")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}
	cfg.ServerAddress = strings.TrimSpace(cfg.ServerAddress)

	return cfg, fs.Args(), nil
}
