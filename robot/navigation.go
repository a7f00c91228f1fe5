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

	"github.com/stretchr/testify/require"

	"github.com/veilnetwork/desktop/driver"
	"github.com/veilnetwork/desktop/localapi/contract"
)

// logouter ends the authenticated session behind the driver.
type logouter interface {
	Logout() error
}

// NavigationRobot switches between the screens of the client window.
type NavigationRobot struct {
	t       *testing.T
	drv     driver.Driver
	session logouter
}

// NewNavigationRobot creates a navigation robot.
func NewNavigationRobot(t *testing.T, drv driver.Driver, session logouter) *NavigationRobot {
	return &NavigationRobot{t: t, drv: drv, session: session}
}

// OpenSettings brings the settings screen to the front.
func (r *NavigationRobot) OpenSettings() *NavigationRobot {
	invoke(r.t, r.drv, contract.ElementNavSettingsButton, nil)
	return r
}

// OpenHome brings the home screen to the front.
func (r *NavigationRobot) OpenHome() *NavigationRobot {
	invoke(r.t, r.drv, contract.ElementNavHomeButton, nil)
	return r
}

// Logout ends the authenticated session.
func (r *NavigationRobot) Logout() *NavigationRobot {
	require.NoError(r.t, r.session.Logout())
	return r
}

// Verify enters the assertion half of the robot.
func (r *NavigationRobot) Verify() *NavigationVerify {
	return &NavigationVerify{t: r.t, drv: r.drv}
}

// NavigationVerify asserts on the active screen with bounded polling.
type NavigationVerify struct {
	t   *testing.T
	drv driver.Driver
}

// SettingsOpen waits until the settings screen is active.
func (v *NavigationVerify) SettingsOpen() *NavigationVerify {
	waitForElementState(v.t, v.drv, contract.ElementNavActiveScreen,
		contract.ScreenSettings, verifyTimeout())
	return v
}

// HomeOpen waits until the home screen is active.
func (v *NavigationVerify) HomeOpen() *NavigationVerify {
	waitForElementState(v.t, v.drv, contract.ElementNavActiveScreen,
		contract.ScreenHome, verifyTimeout())
	return v
}
