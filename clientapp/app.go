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

// Package clientapp is the headless model of the desktop client. It owns the
// screen and sidebar state a windowed build would render and exposes it over
// the local API, element by element, so user flows can be driven and observed
// programmatically.
package clientapp

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/market"
)

// ConnectionService is the daemon surface the client needs: the connection
// actions plus the kill switch policy it propagates on settings changes.
type ConnectionService interface {
	connection.Manager
	SetKillSwitch(enabled bool) error
}

// App models the client application surfaces.
type App struct {
	conn      ConnectionService
	proposals *market.Repository
	settings  *SettingsStore

	mu           sync.Mutex
	activeScreen string
	searchQuery  string
}

// NewApp creates the application model. The window opens on the home screen.
func NewApp(conn ConnectionService, proposals *market.Repository, settings *SettingsStore) *App {
	return &App{
		conn:         conn,
		proposals:    proposals,
		settings:     settings,
		activeScreen: contract.ScreenHome,
	}
}

// Start applies the persisted settings. With auto-connect enabled it also
// dials the fastest server, the same as a user hitting quick connect.
func (app *App) Start() error {
	settings, err := app.settings.Get()
	if err != nil {
		return err
	}
	if err := app.conn.SetKillSwitch(settings.KillSwitch); err != nil {
		return err
	}
	if settings.AutoConnect {
		if err := app.connectFastest(); err != nil {
			log.Warn().Err(err).Msg("Auto-connect on startup failed")
		}
	}
	return nil
}

// Settings returns the persisted client settings.
func (app *App) Settings() (contract.SettingsDTO, error) {
	return app.settings.Get()
}

// UpdateSettings persists the settings and pushes the kill switch policy down
// to the daemon.
func (app *App) UpdateSettings(settings contract.SettingsDTO) error {
	if err := app.settings.Set(settings); err != nil {
		return err
	}
	return app.conn.SetKillSwitch(settings.KillSwitch)
}

func (app *App) connectFastest() error {
	proposal, err := app.proposals.Fastest()
	if err != nil {
		return err
	}
	return app.conn.Connect(proposal)
}

func (app *App) connectRandom() error {
	proposal, err := app.proposals.Random()
	if err != nil {
		return err
	}
	return app.conn.Connect(proposal)
}

func (app *App) connectCountry(country string, category market.Category) error {
	proposal, err := app.proposals.Find(country, category)
	if err != nil {
		return err
	}
	return app.conn.Connect(proposal)
}

func (app *App) screen() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.activeScreen
}

func (app *App) setScreen(screen string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.activeScreen = screen
}

func (app *App) search() string {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.searchQuery
}

func (app *App) setSearch(query string) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.searchQuery = query
}
