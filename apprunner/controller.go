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

// Package apprunner controls the lifecycle of the client application under
// test: launching it, closing it like a user would, and killing it like a
// crash would. The connection daemon is out of scope here on purpose, killing
// the client must leave it untouched.
package apprunner

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/localapi/client"
)

// Controller manages one client application instance.
type Controller interface {
	// Launch starts the client and blocks until its local API answers the
	// healthcheck. FreshStart wipes the client state first, simulating a
	// first-ever launch.
	Launch(freshStart bool) error
	// Close exits the client gracefully.
	Close() error
	// Kill terminates the client abruptly, with no chance to run shutdown
	// logic.
	Kill() error
	// Dispose releases everything the controller holds. The controller is
	// unusable afterwards.
	Dispose() error
	// APIAddress returns the local API address of the running client.
	APIAddress() string
}

// ErrNotRunning is returned when an action needs a running client.
var ErrNotRunning = errors.New("client application is not running")

// ErrAlreadyRunning is returned when launching over a running client.
var ErrAlreadyRunning = errors.New("client application is already running")

// waitForAPI polls the client healthcheck until it answers or the launch
// timeout is spent.
func waitForAPI(address string) error {
	api := client.NewClient(address)
	timeout := config.Current.GetDuration(config.HarnessLaunchTimeout)
	deadline := time.Now().Add(timeout)

	var lastErr error
	for time.Now().Before(deadline) {
		if _, lastErr = api.Healthcheck(); lastErr == nil {
			log.Debug().Msgf("Client local API is up on %s", address)
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.Wrapf(lastErr, "client API did not come up on %s within %s", address, timeout)
}

// settleAfterKill gives the system time to reap the killed process before
// anything probes shared state.
func settleAfterKill() {
	time.Sleep(config.Current.GetDuration(config.HarnessKillSettleDelay))
}
