// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d storage DSN (postgres://, sqlite://, redis://)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-principal-name login name of the single principal
//	-principal-hash stored password hash of the principal
//	-hash-algorithm bcrypt, bcrypt_truncated72 or sha256
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-list-limit default number of items returned by GET /items/
//	-max-open-conns relational connection pool size
//	-operation-timeout per storage call timeout (e.g., "5s")
//	-hash-workers number of password hashing goroutines
//	-log-level minimal log level (debug, info, warn, error)
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var principalName string
	var principalHash string
	var hashAlgorithm string
	var requestTimeout time.Duration
	var listLimit int
	var maxOpenConns int
	var operationTimeout time.Duration
	var hashWorkers int
	var logLevel string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Storage DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&principalName, "principal-name", "", "Principal login name")
	fs.StringVar(&principalHash, "principal-hash", "", "Principal password hash")
	fs.StringVar(&hashAlgorithm, "hash-algorithm", "", "Password hash algorithm")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&listLimit, "list-limit", 0, "Default item list limit")
	fs.IntVar(&maxOpenConns, "max-open-conns", 0, "Relational connection pool size")
	fs.DurationVar(&operationTimeout, "operation-timeout", 0, "Storage call timeout (e.g., 5s)")
	fs.IntVar(&hashWorkers, "hash-workers", 0, "Password hashing workers")
	fs.StringVar(&logLevel, "log-level", "", "Minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashWorkers:   hashWorkers,
			Principal: Principal{
				Name:          principalName,
				Hash:          principalHash,
				HashAlgorithm: hashAlgorithm,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN:              databaseDSN,
				MaxOpenConns:     maxOpenConns,
				OperationTimeout: operationTimeout,
				ListLimit:        listLimit,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
		LogLevel:     logLevel,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
