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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/localapi/contract"
)

// driverStub serves canned element states and records invokes.
type driverStub struct {
	mu      sync.Mutex
	states  map[string]string
	invoked []string
}

func newDriverStub() *driverStub {
	return &driverStub{states: map[string]string{}}
}

func (d *driverStub) setState(id, state string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.states[id] = state
}

func (d *driverStub) ElementState(id string) (contract.ElementStateDTO, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if state, ok := d.states[id]; ok {
		return contract.ElementStateDTO{ID: id, State: state, Enabled: true, Visible: true}, nil
	}
	return contract.ElementStateDTO{}, contract.ErrElementNotFound
}

func (d *driverStub) Invoke(id string, args map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.states[id]; !ok {
		d.states[id] = ""
	}
	d.invoked = append(d.invoked, id)
	return nil
}

func (d *driverStub) invokes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.invoked...)
}

func useFastPolling(t *testing.T) {
	config.Current.SetCLI(config.HarnessVerifyInterval, 2*time.Millisecond)
	config.Current.SetCLI(config.HarnessVerifyTimeout, 200*time.Millisecond)
	config.Current.SetCLI(config.HarnessConnectTimeout, 200*time.Millisecond)
	t.Cleanup(func() {
		config.Current.RemoveCLI(config.HarnessVerifyInterval)
		config.Current.RemoveCLI(config.HarnessVerifyTimeout)
		config.Current.RemoveCLI(config.HarnessConnectTimeout)
	})
}

func TestVerifyPollsUntilStateReached(t *testing.T) {
	useFastPolling(t)
	drv := newDriverStub()
	drv.setState(contract.ElementHomeStatusLabel, string(connection.Connecting))

	go func() {
		time.Sleep(20 * time.Millisecond)
		drv.setState(contract.ElementHomeStatusLabel, string(connection.Connected))
	}()

	started := time.Now()
	NewHomeRobot(t, drv).Verify().IsConnected()
	assert.GreaterOrEqual(t, time.Since(started), 20*time.Millisecond)
}

func TestHomeRobotChainsActions(t *testing.T) {
	useFastPolling(t)
	drv := newDriverStub()

	NewHomeRobot(t, drv).ConnectToFastest().Disconnect()

	assert.Equal(t, []string{
		contract.ElementHomeConnectButton,
		contract.ElementHomeDisconnectButton,
	}, drv.invokes())
}

func TestNavigationRobotDrivesScreens(t *testing.T) {
	useFastPolling(t)
	drv := newDriverStub()
	drv.setState(contract.ElementNavActiveScreen, contract.ScreenHome)

	nav := NewNavigationRobot(t, drv, logoutStub{})
	nav.OpenSettings()
	drv.setState(contract.ElementNavActiveScreen, contract.ScreenSettings)
	nav.Verify().SettingsOpen()

	nav.OpenHome()
	drv.setState(contract.ElementNavActiveScreen, contract.ScreenHome)
	nav.Verify().HomeOpen()
}

type logoutStub struct{}

func (logoutStub) Logout() error { return nil }

func TestSidebarVerifyCountryListed(t *testing.T) {
	useFastPolling(t)
	drv := newDriverStub()
	drv.setState(contract.ElementSidebarCountryList, "DE,FR,NL,US")

	NewSidebarRobot(t, drv).Verify().CountryListed("NL")
}

func TestSettingsRobotTogglePayloads(t *testing.T) {
	useFastPolling(t)
	drv := newDriverStub()

	NewSettingsRobot(t, drv).EnableKillSwitch().DisableAutoConnect()

	assert.Equal(t, []string{
		contract.ElementSettingsKillSwitch,
		contract.ElementSettingsAutoConnect,
	}, drv.invokes())
}
