// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] is usable at startup.
// A missing session secret or DSN is fatal.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: session secret is required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionDuration <= 0 || cfg.App.BcryptCost <= 0 {
		return fmt.Errorf("%w: session duration and bcrypt cost must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.Mail.APIURL != "" && cfg.Adapter.Mail.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
