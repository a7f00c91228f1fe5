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

// Package contract defines the wire DTOs of the client local API together
// with the identifiers of the UI surface elements exposed through it.
package contract

import "github.com/pkg/errors"

// Screens of the client window. Only elements of the active screen are
// visible and interactable.
const (
	ScreenHome     = "home"
	ScreenSettings = "settings"
)

// Element identifiers of the home surface.
const (
	ElementHomeStatusLabel      = "home.status.label"
	ElementHomeConnectButton    = "home.connect.button"
	ElementHomeCancelButton     = "home.cancel.button"
	ElementHomeDisconnectButton = "home.disconnect.button"
	ElementHomeCountryLabel     = "home.country.label"
)

// Element identifiers of the navigation and sidebar surfaces. The sidebar is
// part of the main window and stays visible on every screen.
const (
	ElementNavActiveScreen    = "nav.active.screen"
	ElementNavHomeButton      = "nav.home.button"
	ElementNavSettingsButton  = "nav.settings.button"
	ElementSidebarSearchInput = "sidebar.search.input"
	ElementSidebarCountryList = "sidebar.country.list"
)

// Element identifiers of the settings surface.
const (
	ElementSettingsAutoConnect = "settings.autoconnect.toggle"
	ElementSettingsKillSwitch  = "settings.killswitch.toggle"
	ElementSettingsAutoLaunch  = "settings.autolaunch.toggle"
)

// SidebarCountryRow returns the id of the sidebar row of the given country.
func SidebarCountryRow(country string) string {
	return "sidebar.country." + country
}

// SidebarCountryDisconnect returns the id of the disconnect control of a
// connected sidebar country row.
func SidebarCountryDisconnect(country string) string {
	return "sidebar.country." + country + ".disconnect"
}

// SidebarCategoryRow returns the id of a categorized (secure-core, p2p, tor)
// sidebar country row.
func SidebarCategoryRow(category, country string) string {
	return "sidebar." + category + ".country." + country
}

// Invoke argument keys and values.
const (
	// ArgMode selects the connect target: fastest, random.
	ArgMode     = "mode"
	ModeFastest = "fastest"
	ModeRandom  = "random"
	// ArgValue carries a toggle or input value.
	ArgValue = "value"
	ValueOn  = "on"
	ValueOff = "off"
)

// Element interaction errors surfaced by the local API.
var (
	// ErrElementNotFound means no element with such id exists.
	ErrElementNotFound = errors.New("element not found")
	// ErrElementNotVisible means the element is not on the active screen.
	ErrElementNotVisible = errors.New("element is not visible")
	// ErrElementDisabled means the element cannot be interacted with right now.
	ErrElementDisabled = errors.New("element is disabled")
)

// ElementStateDTO describes one UI element.
type ElementStateDTO struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	Enabled bool   `json:"enabled"`
	Visible bool   `json:"visible"`
}

// InvokeRequest invokes an element action with optional arguments.
type InvokeRequest struct {
	Args map[string]string `json:"args,omitempty"`
}

// LoginRequest checks user credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenDTO is a successful login response.
type TokenDTO struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// SettingsDTO carries the persisted client settings.
type SettingsDTO struct {
	AutoConnect bool `json:"auto_connect"`
	KillSwitch  bool `json:"kill_switch"`
	AutoLaunch  bool `json:"auto_launch"`
}

// HealthCheckDTO is the healthcheck response.
type HealthCheckDTO struct {
	Uptime  string       `json:"uptime"`
	Version BuildInfoDTO `json:"version"`
}

// BuildInfoDTO is the build metadata part of the healthcheck response.
type BuildInfoDTO struct {
	Commit      string `json:"commit"`
	Branch      string `json:"branch"`
	BuildNumber string `json:"buildNumber"`
}
