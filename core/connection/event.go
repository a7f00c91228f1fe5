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

package connection

import (
	"time"

	"github.com/veilnetwork/desktop/market"
)

const (
	// AppTopicConnectionState represents the connection state change topic
	AppTopicConnectionState = "State change"
	// AppTopicConnectionSession represents the session lifetime changes
	AppTopicConnectionSession = "Session change"
)

// AppEventConnectionState is the struct we'll emit on an AppTopicConnectionState topic event
type AppEventConnectionState struct {
	State       State
	SessionInfo Status
}

// State represents list of possible connection states
type State string

const (
	// NotConnected means no connection exists
	NotConnected = State("NotConnected")
	// Connecting means that connection is started but not yet fully established
	Connecting = State("Connecting")
	// Connected means that fully established connection exists
	Connected = State("Connected")
	// Disconnecting means that connection close is in progress
	Disconnecting = State("Disconnecting")
	// Canceled means that connection initialization was started, but was
	// cancelled never reaching Connected state
	Canceled = State("Canceled")
	// Unknown means that we could not determine the current state
	Unknown = State("Unknown")
)

// Status holds connection state, session id and proposal of the connection
type Status struct {
	StartedAt time.Time
	State     State
	SessionID string
	Proposal  market.ServerProposal
}

// Duration returns elapsed time from marked session start
func (s *Status) Duration() time.Duration {
	if s.StartedAt.IsZero() {
		return time.Duration(0)
	}
	return time.Since(s.StartedAt)
}

const (
	// SessionCreatedStatus represents a session creation event
	SessionCreatedStatus = "Created"
	// SessionEndedStatus represents a session end
	SessionEndedStatus = "Ended"
)

// AppEventConnectionSession represents a session related event
type AppEventConnectionSession struct {
	Status      string
	SessionInfo Status
}
