// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] has everything the
// server needs before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionSignKey == "" || cfg.App.SessionDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateLocal checks the fields needed by commands that open the database.
func (cfg *ClientConfig) ValidateLocal() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}

// ValidateRemote checks the fields needed by commands that call the server.
func (cfg *ClientConfig) ValidateRemote() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}
