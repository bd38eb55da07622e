// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly types.
// Durations are written as strings ("1h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashWorkers   int      `json:"hash_workers"`

		Principal struct {
			Name          string `json:"name"`
			Hash          string `json:"hash"`
			HashAlgorithm string `json:"hash_algorithm"`
		} `json:"principal,omitempty"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN              string   `json:"dsn"`
			MaxOpenConns     int      `json:"max_open_conns"`
			OperationTimeout Duration `json:"operation_timeout"`
			ListLimit        int      `json:"list_limit"`
			MaxListLimit     int      `json:"max_list_limit"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			HashWorkers:   jsonCfg.App.HashWorkers,
			Principal: Principal{
				Name:          jsonCfg.App.Principal.Name,
				Hash:          jsonCfg.App.Principal.Hash,
				HashAlgorithm: jsonCfg.App.Principal.HashAlgorithm,
			},
		},
		Storage: Storage{
			DB: DB{
				DSN:              jsonCfg.Storage.DB.DSN,
				MaxOpenConns:     jsonCfg.Storage.DB.MaxOpenConns,
				OperationTimeout: time.Duration(jsonCfg.Storage.DB.OperationTimeout),
				ListLimit:        jsonCfg.Storage.DB.ListLimit,
				MaxListLimit:     jsonCfg.Storage.DB.MaxListLimit,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
