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

package e2e

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veilnetwork/desktop/apprunner"
	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/core/ip"
	"github.com/veilnetwork/desktop/daemon"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/market"
	"github.com/veilnetwork/desktop/requests"
	"github.com/veilnetwork/desktop/robot"
	"github.com/veilnetwork/desktop/session"
)

// harness holds one fully wired scenario environment: a daemon with its
// identity endpoint, a launched and logged-in client, and the probe looking
// at the setup from the outside.
type harness struct {
	t          *testing.T
	daemon     *daemon.Daemon
	controller *apprunner.SimController
	session    *session.Session
	probe      ip.Resolver
	baselineIP string
}

// fastConfig shrinks every harness interval so scenarios run in test time
// instead of user time.
func fastConfig(t *testing.T) {
	overrides := map[string]interface{}{
		config.HarnessVerifyInterval:  10 * time.Millisecond,
		config.HarnessVerifyTimeout:   2 * time.Second,
		config.HarnessConnectTimeout:  5 * time.Second,
		config.HarnessKillSettleDelay: 20 * time.Millisecond,
		config.DesktopDialDelay:       100 * time.Millisecond,
	}
	for key, value := range overrides {
		config.Current.SetCLI(key, value)
	}
	t.Cleanup(func() {
		for key := range overrides {
			config.Current.RemoveCLI(key)
		}
	})
}

func newHarness(t *testing.T) *harness {
	fastConfig(t)

	baselineIP := config.Current.GetString(config.DesktopBaselineIP)
	daemonBus := eventbus.New()
	manager := connection.NewManager(daemonBus, config.Current.GetDuration(config.DesktopDialDelay))
	d := daemon.New(manager, market.NewRepository(), baselineIP)
	require.NoError(t, d.Subscribe(daemonBus))

	// the daemon API doubles as the identity service: /ip answers with
	// whatever the outside world would see
	identity := httptest.NewServer(daemon.NewRouter(d))
	t.Cleanup(identity.Close)

	probe := ip.NewResolver(requests.NewHTTPClient(1*time.Second), identity.URL+"/ip", ip.RetryOptions{
		InitialInterval: 10 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
		MaxRetries:      10,
		RequestTimeout:  1 * time.Second,
	})

	controller := apprunner.NewSimController(d, d.Proposals(), t.TempDir())
	sess, err := session.Open(controller, true)
	require.NoError(t, err)
	t.Cleanup(sess.Close)

	return &harness{
		t:          t,
		daemon:     d,
		controller: controller,
		session:    sess,
		probe:      probe,
		baselineIP: baselineIP,
	}
}

func (h *harness) home() *robot.HomeRobot {
	return robot.NewHomeRobot(h.t, h.session.Driver())
}

func (h *harness) nav() *robot.NavigationRobot {
	return robot.NewNavigationRobot(h.t, h.session.Driver(), h.session.API())
}

func (h *harness) sidebar() *robot.SidebarRobot {
	return robot.NewSidebarRobot(h.t, h.session.Driver())
}

func (h *harness) settings() *robot.SettingsRobot {
	return robot.NewSettingsRobot(h.t, h.session.Driver())
}

// publicIP asks the identity service what the world currently sees.
func (h *harness) publicIP() string {
	h.t.Helper()
	address, err := h.probe.GetPublicIP()
	require.NoError(h.t, err, "public IP probe failed")
	return address
}

// ipAddressEquals asserts the externally visible IP, retrying transient
// probe failures.
func (h *harness) ipAddressEquals(expected string) {
	h.t.Helper()
	err := retryFlaky(3, func() error {
		return waitForCondition(func() (bool, error) {
			address, err := h.probe.GetPublicIP()
			if err != nil {
				return false, err
			}
			return address == expected, nil
		})
	})
	require.NoError(h.t, err, "public IP never became %s", expected)
}

// ipAddressChanged asserts the externally visible IP moved away from the
// given address.
func (h *harness) ipAddressChanged(previous string) {
	h.t.Helper()
	err := waitForCondition(func() (bool, error) {
		address, err := h.probe.GetPublicIP()
		if err != nil {
			return false, err
		}
		return address != previous, nil
	})
	require.NoError(h.t, err, "public IP never changed from %s", previous)
}
