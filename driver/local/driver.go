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

// Package local drives the client UI through its local HTTP API.
package local

import (
	"github.com/veilnetwork/desktop/localapi/client"
	"github.com/veilnetwork/desktop/localapi/contract"
)

// Driver drives the client through the authenticated local API session of the
// given client.
type Driver struct {
	api *client.Client
}

// NewDriver creates a local API backed driver.
func NewDriver(api *client.Client) *Driver {
	return &Driver{api: api}
}

// ElementState reads a snapshot of one element.
func (d *Driver) ElementState(id string) (contract.ElementStateDTO, error) {
	return d.api.ElementState(id)
}

// Invoke triggers the action behind one element.
func (d *Driver) Invoke(id string, args map[string]string) error {
	return d.api.InvokeElement(id, args)
}
