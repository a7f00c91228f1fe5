/*
 * Copyright (C) 2023 The "VeilNetwork/desktop" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package clientapp

import (
	"github.com/pkg/errors"

	"github.com/veilnetwork/desktop/core/storage/boltdb"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi/contract"
)

const (
	// AppTopicSettings is the settings change topic
	AppTopicSettings = "Settings change"

	settingsBucket = "settings"
	settingsKey    = "current"
)

// AppEventSettings is the struct we'll emit on an AppTopicSettings topic event
type AppEventSettings struct {
	Settings contract.SettingsDTO
}

// SettingsStore persists client settings across application restarts. Every
// change is written through to disk immediately, so settings written before
// an abrupt process death are never lost.
type SettingsStore struct {
	storage *boltdb.Bolt
	bus     eventbus.Publisher
}

// NewSettingsStore creates a settings store on top of the given storage.
func NewSettingsStore(storage *boltdb.Bolt, bus eventbus.Publisher) *SettingsStore {
	return &SettingsStore{storage: storage, bus: bus}
}

// Get returns the stored settings, or defaults when nothing is stored yet.
func (s *SettingsStore) Get() (contract.SettingsDTO, error) {
	var settings contract.SettingsDTO
	err := s.storage.GetValue(settingsBucket, settingsKey, &settings)
	if err == boltdb.ErrNotFound {
		return contract.SettingsDTO{}, nil
	}
	if err != nil {
		return contract.SettingsDTO{}, errors.Wrap(err, "failed to load settings")
	}
	return settings, nil
}

// Set writes the settings through to disk and announces the change.
func (s *SettingsStore) Set(settings contract.SettingsDTO) error {
	if err := s.storage.SetValue(settingsBucket, settingsKey, settings); err != nil {
		return errors.Wrap(err, "failed to store settings")
	}
	s.bus.Publish(AppTopicSettings, AppEventSettings{Settings: settings})
	return nil
}
