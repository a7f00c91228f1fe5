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

package robot

import (
	"testing"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/driver"
	"github.com/veilnetwork/desktop/localapi/contract"
)

// HomeRobot drives the connect controls of the home screen.
type HomeRobot struct {
	t   *testing.T
	drv driver.Driver
}

// NewHomeRobot creates a home screen robot.
func NewHomeRobot(t *testing.T, drv driver.Driver) *HomeRobot {
	return &HomeRobot{t: t, drv: drv}
}

// Connect hits quick connect.
func (r *HomeRobot) Connect() *HomeRobot {
	invoke(r.t, r.drv, contract.ElementHomeConnectButton, nil)
	return r
}

// ConnectToFastest connects to the fastest server.
func (r *HomeRobot) ConnectToFastest() *HomeRobot {
	invoke(r.t, r.drv, contract.ElementHomeConnectButton,
		map[string]string{contract.ArgMode: contract.ModeFastest})
	return r
}

// ConnectToRandom connects to a random server.
func (r *HomeRobot) ConnectToRandom() *HomeRobot {
	invoke(r.t, r.drv, contract.ElementHomeConnectButton,
		map[string]string{contract.ArgMode: contract.ModeRandom})
	return r
}

// CancelConnection aborts the connection attempt in progress.
func (r *HomeRobot) CancelConnection() *HomeRobot {
	invoke(r.t, r.drv, contract.ElementHomeCancelButton, nil)
	return r
}

// Disconnect closes the established connection.
func (r *HomeRobot) Disconnect() *HomeRobot {
	invoke(r.t, r.drv, contract.ElementHomeDisconnectButton, nil)
	return r
}

// Verify enters the assertion half of the robot.
func (r *HomeRobot) Verify() *HomeVerify {
	return &HomeVerify{t: r.t, drv: r.drv}
}

// HomeVerify asserts on the home screen with bounded polling.
type HomeVerify struct {
	t   *testing.T
	drv driver.Driver
}

// IsConnecting waits until the status label shows a connection attempt in
// progress.
func (v *HomeVerify) IsConnecting() *HomeVerify {
	waitForElementState(v.t, v.drv, contract.ElementHomeStatusLabel,
		string(connection.Connecting), verifyTimeout())
	return v
}

// IsConnected waits until the connection is fully established.
func (v *HomeVerify) IsConnected() *HomeVerify {
	waitForElementState(v.t, v.drv, contract.ElementHomeStatusLabel,
		string(connection.Connected), connectTimeout())
	return v
}

// IsDisconnected waits until no connection exists.
func (v *HomeVerify) IsDisconnected() *HomeVerify {
	waitForElementState(v.t, v.drv, contract.ElementHomeStatusLabel,
		string(connection.NotConnected), connectTimeout())
	return v
}

// IsConnectedTo waits until the connection is established with the given
// country.
func (v *HomeVerify) IsConnectedTo(country string) *HomeVerify {
	v.IsConnected()
	waitForElementState(v.t, v.drv, contract.ElementHomeCountryLabel,
		country, verifyTimeout())
	return v
}
