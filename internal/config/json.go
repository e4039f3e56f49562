// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings such as "30s".
type StructuredJSONConfig struct {
	App struct {
		Environment     string   `json:"environment"`
		SessionSecret   string   `json:"session_secret"`
		SessionIssuer   string   `json:"session_issuer"`
		SessionDuration Duration `json:"session_duration"`
		BcryptCost      int      `json:"bcrypt_cost"`
		Version         string   `json:"version"`
		FrontendOrigin  string   `json:"frontend_origin"`
		ConfirmationURL string   `json:"confirmation_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver          string   `json:"driver"`
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			ConnMaxIdleTime Duration `json:"conn_max_idle_time"`
			ConnectTimeout  Duration `json:"connect_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AuthRateLimit   float64  `json:"auth_rate_limit"`
		AuthRateBurst   int      `json:"auth_rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			APIURL         string   `json:"api_url"`
			APIKey         string   `json:"api_key"`
			From           string   `json:"from"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionCleanupInterval Duration `json:"session_cleanup_interval"`
	} `json:"workers,omitempty"`
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
			Environment:     jsonCfg.App.Environment,
			SessionSecret:   jsonCfg.App.SessionSecret,
			SessionIssuer:   jsonCfg.App.SessionIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			BcryptCost:      jsonCfg.App.BcryptCost,
			Version:         jsonCfg.App.Version,
			FrontendOrigin:  jsonCfg.App.FrontendOrigin,
			ConfirmationURL: jsonCfg.App.ConfirmationURL,
		},
		Storage: Storage{
			DB: DB{
				Driver:          jsonCfg.Storage.DB.Driver,
				DSN:             jsonCfg.Storage.DB.DSN,
				MaxOpenConns:    jsonCfg.Storage.DB.MaxOpenConns,
				ConnMaxIdleTime: time.Duration(jsonCfg.Storage.DB.ConnMaxIdleTime),
				ConnectTimeout:  time.Duration(jsonCfg.Storage.DB.ConnectTimeout),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AuthRateLimit:   jsonCfg.Server.AuthRateLimit,
			AuthRateBurst:   jsonCfg.Server.AuthRateBurst,
		},
		Adapter: Adapter{
			Mail: Mail{
				APIURL:         jsonCfg.Adapter.Mail.APIURL,
				APIKey:         jsonCfg.Adapter.Mail.APIKey,
				From:           jsonCfg.Adapter.Mail.From,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Mail.RequestTimeout),
			},
		},
		Workers: Workers{
			SessionCleanupInterval: time.Duration(jsonCfg.Workers.SessionCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h" and "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
