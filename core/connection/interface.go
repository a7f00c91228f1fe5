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

import "github.com/veilnetwork/desktop/market"

// Manager provides methods to manage the connection. Only Connect, Cancel and
// Disconnect may request state transitions; Status observes and never mutates.
type Manager interface {
	// Connect dials the given proposal, reports error if a connection already exists
	Connect(proposal market.ServerProposal) error
	// Cancel aborts a connection attempt that is still in the Connecting state
	Cancel() error
	// Disconnect closes the established connection, reports error if no connection
	Disconnect() error
	// Status queries current status of the connection
	Status() Status
}
