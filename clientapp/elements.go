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
	"strings"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/market"
)

// element is one addressable control of the client window. A zero screen
// means the element lives outside the screen area and is always visible.
type element struct {
	screen  string
	state   func() string
	enabled func() bool
	invoke  func(args map[string]string) error
}

var errNoAction = contract.ErrElementDisabled

// ElementState reads a single element. Elements of an inactive screen still
// resolve, with Visible reporting false.
func (app *App) ElementState(id string) (contract.ElementStateDTO, error) {
	el, err := app.lookup(id)
	if err != nil {
		return contract.ElementStateDTO{}, err
	}
	dto := contract.ElementStateDTO{
		ID:      id,
		Visible: el.screen == "" || el.screen == app.screen(),
	}
	if el.state != nil {
		dto.State = el.state()
	}
	if el.enabled != nil {
		dto.Enabled = el.enabled()
	} else {
		dto.Enabled = el.invoke != nil
	}
	return dto, nil
}

// InvokeElement triggers the action behind an element, enforcing the same
// rules a pointer device would: hidden or disabled controls cannot be used.
func (app *App) InvokeElement(id string, args map[string]string) error {
	el, err := app.lookup(id)
	if err != nil {
		return err
	}
	if el.screen != "" && el.screen != app.screen() {
		return contract.ErrElementNotVisible
	}
	if el.invoke == nil {
		return errNoAction
	}
	if el.enabled != nil && !el.enabled() {
		return contract.ErrElementDisabled
	}
	return el.invoke(args)
}

func (app *App) lookup(id string) (element, error) {
	switch id {
	case contract.ElementHomeStatusLabel:
		return element{screen: contract.ScreenHome, state: func() string {
			return string(app.conn.Status().State)
		}}, nil
	case contract.ElementHomeCountryLabel:
		return element{screen: contract.ScreenHome, state: func() string {
			return app.conn.Status().Proposal.Country
		}}, nil
	case contract.ElementHomeConnectButton:
		return element{
			screen:  contract.ScreenHome,
			enabled: func() bool { return app.conn.Status().State == connection.NotConnected },
			invoke: func(args map[string]string) error {
				if args[contract.ArgMode] == contract.ModeRandom {
					return app.connectRandom()
				}
				return app.connectFastest()
			},
		}, nil
	case contract.ElementHomeCancelButton:
		return element{
			screen:  contract.ScreenHome,
			enabled: func() bool { return app.conn.Status().State == connection.Connecting },
			invoke:  func(map[string]string) error { return app.conn.Cancel() },
		}, nil
	case contract.ElementHomeDisconnectButton:
		return element{
			screen:  contract.ScreenHome,
			enabled: func() bool { return app.conn.Status().State == connection.Connected },
			invoke:  func(map[string]string) error { return app.conn.Disconnect() },
		}, nil
	case contract.ElementNavActiveScreen:
		return element{state: app.screen}, nil
	case contract.ElementNavHomeButton:
		return element{invoke: func(map[string]string) error {
			app.setScreen(contract.ScreenHome)
			return nil
		}}, nil
	case contract.ElementNavSettingsButton:
		return element{invoke: func(map[string]string) error {
			app.setScreen(contract.ScreenSettings)
			return nil
		}}, nil
	case contract.ElementSidebarSearchInput:
		return element{
			state: app.search,
			invoke: func(args map[string]string) error {
				app.setSearch(args[contract.ArgValue])
				return nil
			},
		}, nil
	case contract.ElementSidebarCountryList:
		return element{state: func() string {
			return strings.Join(app.proposals.Countries(app.search()), ",")
		}}, nil
	case contract.ElementSettingsAutoConnect:
		return app.toggleElement(
			func(s contract.SettingsDTO) bool { return s.AutoConnect },
			func(s *contract.SettingsDTO, on bool) { s.AutoConnect = on },
		), nil
	case contract.ElementSettingsKillSwitch:
		return app.toggleElement(
			func(s contract.SettingsDTO) bool { return s.KillSwitch },
			func(s *contract.SettingsDTO, on bool) { s.KillSwitch = on },
		), nil
	case contract.ElementSettingsAutoLaunch:
		return app.toggleElement(
			func(s contract.SettingsDTO) bool { return s.AutoLaunch },
			func(s *contract.SettingsDTO, on bool) { s.AutoLaunch = on },
		), nil
	}
	return app.lookupSidebarRow(id)
}

// toggleElement builds a settings screen on/off switch around one settings
// field.
func (app *App) toggleElement(get func(contract.SettingsDTO) bool, set func(*contract.SettingsDTO, bool)) element {
	return element{
		screen: contract.ScreenSettings,
		state: func() string {
			settings, err := app.settings.Get()
			if err != nil || !get(settings) {
				return contract.ValueOff
			}
			return contract.ValueOn
		},
		invoke: func(args map[string]string) error {
			settings, err := app.settings.Get()
			if err != nil {
				return err
			}
			set(&settings, args[contract.ArgValue] == contract.ValueOn)
			return app.UpdateSettings(settings)
		},
	}
}

// lookupSidebarRow resolves the dynamic per-country sidebar controls:
// sidebar.country.<CC>, sidebar.country.<CC>.disconnect and
// sidebar.<category>.country.<CC>.
func (app *App) lookupSidebarRow(id string) (element, error) {
	rest, ok := cutPrefix(id, "sidebar.")
	if !ok {
		return element{}, contract.ErrElementNotFound
	}

	if country, ok := cutPrefix(rest, "country."); ok {
		if base, ok := cutSuffix(country, ".disconnect"); ok {
			return app.countryDisconnectElement(base), nil
		}
		return app.countryRowElement(country, market.CategoryStandard), nil
	}

	for _, category := range []market.Category{market.CategorySecureCore, market.CategoryP2P, market.CategoryTor} {
		if country, ok := cutPrefix(rest, string(category)+".country."); ok {
			return app.countryRowElement(country, category), nil
		}
	}
	return element{}, contract.ErrElementNotFound
}

func (app *App) countryRowElement(country string, category market.Category) element {
	return element{
		state: func() string {
			if len(app.proposals.ByCountry(country, category)) == 0 {
				return ""
			}
			return country
		},
		enabled: func() bool {
			return len(app.proposals.ByCountry(country, category)) > 0 &&
				app.conn.Status().State == connection.NotConnected
		},
		invoke: func(map[string]string) error {
			return app.connectCountry(country, category)
		},
	}
}

func (app *App) countryDisconnectElement(country string) element {
	connectedTo := func() bool {
		status := app.conn.Status()
		return status.State == connection.Connected &&
			strings.EqualFold(status.Proposal.Country, country)
	}
	return element{
		enabled: connectedTo,
		invoke: func(map[string]string) error {
			return app.conn.Disconnect()
		},
	}
}

func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return s, false
	}
	return s[len(prefix):], true
}

func cutSuffix(s, suffix string) (string, bool) {
	if !strings.HasSuffix(s, suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}
