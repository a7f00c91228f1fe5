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

package tray

import (
	"sync"

	"fyne.io/systray"
	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi/endpoints"
)

// presenter pushes icon and tooltip updates to the desktop shell. The systray
// package is the production implementation.
type presenter interface {
	SetIcon(icon []byte)
	SetTooltip(tooltip string)
}

type systrayPresenter struct{}

func (systrayPresenter) SetIcon(icon []byte)       { systray.SetIcon(icon) }
func (systrayPresenter) SetTooltip(tooltip string) { systray.SetTooltip(tooltip) }

// Indicator keeps the tray in sync with what happens in the app. It listens
// on the event bus and re-derives the status on every input change.
type Indicator struct {
	registry  *IconRegistry
	presenter presenter

	mu            sync.Mutex
	ready         bool
	authenticated bool
	state         connection.State
	flags         Flags
}

// NewIndicator creates a tray indicator using the given icon set.
func NewIndicator(registry *IconRegistry) *Indicator {
	return &Indicator{
		registry:  registry,
		presenter: systrayPresenter{},
		state:     connection.NotConnected,
	}
}

// Subscribe registers the indicator on every topic it presents.
func (i *Indicator) Subscribe(bus eventbus.Subscriber) error {
	subscriptions := map[string]interface{}{
		connection.AppTopicConnectionState: i.handleConnectionState,
		endpoints.AppTopicUIAuthentication: i.handleAuthentication,
	}
	for topic, handler := range subscriptions {
		if err := bus.SubscribeAsync(topic, handler); err != nil {
			return err
		}
	}
	return nil
}

// Run takes over the calling goroutine and serves the tray until Stop.
func (i *Indicator) Run(onExit func()) {
	systray.Run(func() {
		i.mu.Lock()
		i.ready = true
		i.mu.Unlock()
		systray.SetTitle("VeilNetwork")
		i.render()
	}, onExit)
}

// Stop removes the tray icon and unblocks Run.
func (i *Indicator) Stop() {
	systray.Quit()
}

func (i *Indicator) handleConnectionState(e connection.AppEventConnectionState) {
	i.mu.Lock()
	i.state = e.State
	i.mu.Unlock()
	i.render()
}

func (i *Indicator) handleAuthentication(e endpoints.AppEventUIAuthentication) {
	i.mu.Lock()
	i.authenticated = e.Authenticated
	i.mu.Unlock()
	i.render()
}

// SetFlags overrides the error conditions shown in the tray.
func (i *Indicator) SetFlags(flags Flags) {
	i.mu.Lock()
	i.flags = flags
	i.mu.Unlock()
	i.render()
}

func (i *Indicator) render() {
	i.mu.Lock()
	if !i.ready {
		i.mu.Unlock()
		return
	}
	status := StatusFrom(i.authenticated, i.state, i.flags)
	i.mu.Unlock()

	log.Trace().Msgf("Tray status: %s", status)
	i.presenter.SetIcon(i.registry.Icon(status))
	i.presenter.SetTooltip("VeilNetwork: " + string(status))
}
