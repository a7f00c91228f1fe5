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

	"github.com/veilnetwork/desktop/driver"
	"github.com/veilnetwork/desktop/localapi/contract"
)

// SettingsRobot drives the toggles of the settings screen.
type SettingsRobot struct {
	t   *testing.T
	drv driver.Driver
}

// NewSettingsRobot creates a settings screen robot.
func NewSettingsRobot(t *testing.T, drv driver.Driver) *SettingsRobot {
	return &SettingsRobot{t: t, drv: drv}
}

func (r *SettingsRobot) set(id, value string) *SettingsRobot {
	invoke(r.t, r.drv, id, map[string]string{contract.ArgValue: value})
	return r
}

// EnableAutoConnect switches auto-connect on.
func (r *SettingsRobot) EnableAutoConnect() *SettingsRobot {
	return r.set(contract.ElementSettingsAutoConnect, contract.ValueOn)
}

// DisableAutoConnect switches auto-connect off.
func (r *SettingsRobot) DisableAutoConnect() *SettingsRobot {
	return r.set(contract.ElementSettingsAutoConnect, contract.ValueOff)
}

// EnableKillSwitch switches the kill switch on.
func (r *SettingsRobot) EnableKillSwitch() *SettingsRobot {
	return r.set(contract.ElementSettingsKillSwitch, contract.ValueOn)
}

// DisableKillSwitch switches the kill switch off.
func (r *SettingsRobot) DisableKillSwitch() *SettingsRobot {
	return r.set(contract.ElementSettingsKillSwitch, contract.ValueOff)
}

// EnableAutoLaunch switches launch-on-login on.
func (r *SettingsRobot) EnableAutoLaunch() *SettingsRobot {
	return r.set(contract.ElementSettingsAutoLaunch, contract.ValueOn)
}

// DisableAutoLaunch switches launch-on-login off.
func (r *SettingsRobot) DisableAutoLaunch() *SettingsRobot {
	return r.set(contract.ElementSettingsAutoLaunch, contract.ValueOff)
}

// Verify enters the assertion half of the robot.
func (r *SettingsRobot) Verify() *SettingsVerify {
	return &SettingsVerify{t: r.t, drv: r.drv}
}

// SettingsVerify asserts on the settings toggles with bounded polling.
type SettingsVerify struct {
	t   *testing.T
	drv driver.Driver
}

func (v *SettingsVerify) toggleIs(id, value string) *SettingsVerify {
	waitForElementState(v.t, v.drv, id, value, verifyTimeout())
	return v
}

// AutoConnectEnabled waits until the auto-connect toggle reads on.
func (v *SettingsVerify) AutoConnectEnabled() *SettingsVerify {
	return v.toggleIs(contract.ElementSettingsAutoConnect, contract.ValueOn)
}

// AutoConnectDisabled waits until the auto-connect toggle reads off.
func (v *SettingsVerify) AutoConnectDisabled() *SettingsVerify {
	return v.toggleIs(contract.ElementSettingsAutoConnect, contract.ValueOff)
}

// KillSwitchEnabled waits until the kill switch toggle reads on.
func (v *SettingsVerify) KillSwitchEnabled() *SettingsVerify {
	return v.toggleIs(contract.ElementSettingsKillSwitch, contract.ValueOn)
}

// KillSwitchDisabled waits until the kill switch toggle reads off.
func (v *SettingsVerify) KillSwitchDisabled() *SettingsVerify {
	return v.toggleIs(contract.ElementSettingsKillSwitch, contract.ValueOff)
}

// AutoLaunchEnabled waits until the launch-on-login toggle reads on.
func (v *SettingsVerify) AutoLaunchEnabled() *SettingsVerify {
	return v.toggleIs(contract.ElementSettingsAutoLaunch, contract.ValueOn)
}

// AutoLaunchDisabled waits until the launch-on-login toggle reads off.
func (v *SettingsVerify) AutoLaunchDisabled() *SettingsVerify {
	return v.toggleIs(contract.ElementSettingsAutoLaunch, contract.ValueOff)
}
