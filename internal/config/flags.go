// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty host means all
// interfaces.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line arguments into a partial
// [StructuredConfig]. Unset flags leave zero values so they do not
// override other sources.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx or sqlite3)
//	-env environment mode (development or production)
//	-c/-config json file path with configs
//	-session-secret session token signing secret
//	-session-issuer session token issuer
//	-session-duration session lifetime (e.g. "24h")
//	-request-timeout request timeout (e.g. "30s")
//	-frontend-origin allowed CORS origin
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("invoice-tracker", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, driver, environment string
	var jsonConfigPath string
	var sessionSecret, sessionIssuer string
	var sessionDuration, requestTimeout time.Duration
	var frontendOrigin string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&environment, "env", "", "Environment mode (development or production)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session token signing secret")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&frontendOrigin, "frontend-origin", "", "Allowed CORS origin")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:     environment,
			SessionSecret:   sessionSecret,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
			FrontendOrigin:  frontendOrigin,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
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
// It validates the port range and checks IP correctness unless host is
// empty or "localhost".
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
