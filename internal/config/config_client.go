// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view used by qactl. It never parses the
// process flags: qactl owns its command line through cobra and overrides the
// values below from its own flags.
type ClientConfig struct {
	// DSN is the database used by the local (direct-to-storage) commands.
	DSN string
	// ServerAddress is the base URL used by the remote commands.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// GetClientConfig builds a client config from the environment and the
// optional JSON file. Validation is left to the individual commands because
// local and remote commands need different fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		DSN:            cfg.Storage.DB.DSN,
		ServerAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, nil
}
