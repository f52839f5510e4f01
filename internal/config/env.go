// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment, which by then includes
// anything godotenv loaded from the dotenv file. Variable names come from the
// `env` and `envPrefix` tags, so STORAGE_DB_DATABASE_URI lands in
// Storage.DB.DSN and SERVER_RATE_LIMIT in Server.RateLimit.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading env configuration: %w", err)
	}
	return nil
}
