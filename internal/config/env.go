// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// dotEnvFiles returns the dotenv files to load for the current mode,
// most specific first.
func dotEnvFiles() []string {
	mode := os.Getenv("APP_ENV")
	if mode == "" {
		mode = EnvDevelopment
	}

	return []string{".env." + mode + ".local", ".env"}
}

// loadDotEnv loads variables from files into the process environment.
// Variables already set are never overwritten, so earlier files win.
// Missing files are skipped.
func loadDotEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading dotenv file %s: %w", file, err)
		}
	}

	return nil
}
