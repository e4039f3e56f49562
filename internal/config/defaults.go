// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:     EnvDevelopment,
			SessionIssuer:   "invoice-tracker",
			SessionDuration: 24 * time.Hour,
			BcryptCost:      10,
			FrontendOrigin:  "http://localhost:3000",
			ConfirmationURL: "http://localhost:5000/user/confirm-email",
		},
		Storage: Storage{
			DB: DB{
				Driver:          DriverPostgres,
				MaxOpenConns:    20,
				ConnMaxIdleTime: 30 * time.Second,
				ConnectTimeout:  2 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:     ":5000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AuthRateLimit:   1,
			AuthRateBurst:   10,
		},
		Adapter: Adapter{
			Mail: Mail{
				RequestTimeout: 5 * time.Second,
			},
		},
		Workers: Workers{
			SessionCleanupInterval: 15 * time.Minute,
		},
	}
}
