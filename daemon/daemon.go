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

// Package daemon simulates the persistent connection service the desktop
// client talks to. The daemon owns the connection state machine and the
// externally observable egress IP, and it outlives the client process: a
// killed client leaves the connection (and the IP seen from outside) intact.
package daemon

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/market"
)

// Daemon owns the simulated connection and the identity endpoint data.
type Daemon struct {
	manager   connection.Manager
	proposals *market.Repository
	startedAt time.Time

	mu         sync.Mutex
	baselineIP string
	killSwitch bool
	engaged    bool
}

// New creates a daemon around the given connection manager.
func New(manager connection.Manager, proposals *market.Repository, baselineIP string) *Daemon {
	return &Daemon{
		manager:    manager,
		proposals:  proposals,
		startedAt:  time.Now(),
		baselineIP: baselineIP,
	}
}

// Proposals returns the server reference data of this daemon.
func (d *Daemon) Proposals() *market.Repository {
	return d.proposals
}

// Subscribe starts tracking connection transitions on the given bus. The bus
// must be the one the connection manager publishes on.
func (d *Daemon) Subscribe(bus eventbus.Subscriber) error {
	return bus.Subscribe(connection.AppTopicConnectionState, d.handleConnectionState)
}

// An engaged kill switch is released only once a connection actually comes
// up. A connect attempt that is cancelled or fails keeps traffic blocked.
func (d *Daemon) handleConnectionState(e connection.AppEventConnectionState) {
	if e.State != connection.Connected {
		return
	}
	d.mu.Lock()
	if d.engaged {
		d.engaged = false
		log.Info().Msg("Connection established, kill switch released")
	}
	d.mu.Unlock()
}

// Connect dials the given proposal.
func (d *Daemon) Connect(proposal market.ServerProposal) error {
	return d.manager.Connect(proposal)
}

// Cancel aborts a connection attempt in progress.
func (d *Daemon) Cancel() error {
	return d.manager.Cancel()
}

// Disconnect closes the connection on explicit user intent. It never engages
// the kill switch.
func (d *Daemon) Disconnect() error {
	return d.manager.Disconnect()
}

// Status returns the current connection status.
func (d *Daemon) Status() connection.Status {
	return d.manager.Status()
}

// SetKillSwitch enables or disables the kill switch policy. Disabling it also
// releases blocked traffic.
func (d *Daemon) SetKillSwitch(enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.killSwitch = enabled
	if !enabled {
		d.engaged = false
	}
	return nil
}

// Drop simulates an unexpected connection loss. With the kill switch enabled
// all traffic is blocked until the next successful connect.
func (d *Daemon) Drop() error {
	status := d.manager.Status()
	if status.State != connection.Connected {
		return connection.ErrNoConnection
	}
	if err := d.manager.Disconnect(); err != nil {
		return err
	}
	d.mu.Lock()
	if d.killSwitch {
		d.engaged = true
		log.Warn().Msg("Connection lost unexpectedly, kill switch engaged")
	}
	d.mu.Unlock()
	return nil
}

// TrafficBlocked reports whether the kill switch currently blocks all traffic.
func (d *Daemon) TrafficBlocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.engaged
}

// EgressIP returns the IP address an external identity service would see.
func (d *Daemon) EgressIP() string {
	status := d.manager.Status()
	if status.State == connection.Connected {
		return status.Proposal.EgressIP
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.baselineIP
}
