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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilnetwork/desktop/core/storage/boltdb"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi/contract"
)

func TestSettingsDefaultToAllOff(t *testing.T) {
	storage, err := boltdb.NewStorage(t.TempDir())
	require.NoError(t, err)
	defer storage.Close()

	store := NewSettingsStore(storage, eventbus.New())
	settings, err := store.Get()
	assert.NoError(t, err)
	assert.Equal(t, contract.SettingsDTO{}, settings)
}

func TestSettingsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	storage, err := boltdb.NewStorage(dir)
	require.NoError(t, err)
	store := NewSettingsStore(storage, eventbus.New())
	require.NoError(t, store.Set(contract.SettingsDTO{AutoConnect: true, KillSwitch: true}))
	require.NoError(t, storage.Close())

	storage, err = boltdb.NewStorage(dir)
	require.NoError(t, err)
	defer storage.Close()

	settings, err := NewSettingsStore(storage, eventbus.New()).Get()
	assert.NoError(t, err)
	assert.True(t, settings.AutoConnect)
	assert.True(t, settings.KillSwitch)
	assert.False(t, settings.AutoLaunch)
}

func TestSettingsChangeIsAnnounced(t *testing.T) {
	storage, err := boltdb.NewStorage(t.TempDir())
	require.NoError(t, err)
	defer storage.Close()

	bus := eventbus.New()
	var received AppEventSettings
	err = bus.Subscribe(AppTopicSettings, func(e AppEventSettings) {
		received = e
	})
	require.NoError(t, err)

	store := NewSettingsStore(storage, bus)
	require.NoError(t, store.Set(contract.SettingsDTO{AutoLaunch: true}))
	assert.True(t, received.Settings.AutoLaunch)
}
