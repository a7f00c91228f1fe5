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

// Package driver abstracts how the UI under test is reached. Robots only talk
// to this interface, so swapping the transport (local API today, an
// accessibility bridge some day) never touches a single flow.
package driver

import "github.com/veilnetwork/desktop/localapi/contract"

// Driver reads and drives single UI elements by their stable identifier.
type Driver interface {
	// ElementState reads a snapshot of one element.
	ElementState(id string) (contract.ElementStateDTO, error)
	// Invoke triggers the action behind one element.
	Invoke(id string, args map[string]string) error
}
