// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Setting keys persisted in the settings table.
const (
	SettingModerationEnabled = "moderation_enabled"
)

// Settings is the typed view of the key/value settings table.
type Settings struct {
	ModerationEnabled bool `json:"moderation_enabled"`
}
