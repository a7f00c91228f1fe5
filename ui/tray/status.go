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

// Package tray renders the client state in the system tray. The status shown
// there is derived from inputs in one pure function, the systray glue only
// presents it.
package tray

import "github.com/veilnetwork/desktop/core/connection"

// Status is what the tray communicates to the user.
type Status string

// Tray statuses, ordered roughly by how much attention they demand.
const (
	StatusLoggedOut    = Status("LoggedOut")
	StatusDisconnected = Status("Disconnected")
	StatusConnecting   = Status("Connecting")
	StatusConnected    = Status("Connected")
	StatusError        = Status("Error")
)

// Flags carry error conditions that override the regular status.
type Flags struct {
	// DaemonUnreachable means the client lost its daemon.
	DaemonUnreachable bool
	// LastConnectFailed means the most recent connect attempt errored out.
	LastConnectFailed bool
}

// StatusFrom derives the tray status. Error conditions win over everything,
// an unauthenticated session wins over connection state.
func StatusFrom(authenticated bool, state connection.State, flags Flags) Status {
	if flags.DaemonUnreachable || flags.LastConnectFailed {
		return StatusError
	}
	if !authenticated {
		return StatusLoggedOut
	}
	switch state {
	case connection.Connecting:
		return StatusConnecting
	case connection.Connected:
		return StatusConnected
	default:
		// Disconnecting and Canceled are transient steps towards NotConnected
		return StatusDisconnected
	}
}
