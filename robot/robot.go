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

// Package robot implements the robot pattern for driving the client UI in
// tests. Action robots chain fluent steps, Verify façades assert on UI state
// with bounded polling instead of raw sleeps.
package robot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/driver"
	"github.com/veilnetwork/desktop/localapi/contract"
)

func verifyInterval() time.Duration {
	return config.Current.GetDuration(config.HarnessVerifyInterval)
}

func verifyTimeout() time.Duration {
	return config.Current.GetDuration(config.HarnessVerifyTimeout)
}

func connectTimeout() time.Duration {
	return config.Current.GetDuration(config.HarnessConnectTimeout)
}

// invoke triggers an element action, failing the test on any driver error.
func invoke(t *testing.T, drv driver.Driver, id string, args map[string]string) {
	t.Helper()
	require.NoErrorf(t, drv.Invoke(id, args), "failed to invoke element %q", id)
}

// waitForElementState polls one element until its state matches, or fails the
// test with the last observed state once the timeout is spent.
func waitForElementState(t *testing.T, drv driver.Driver, id, expected string, timeout time.Duration) {
	t.Helper()
	lastState, lastErr := pollElement(drv, id, timeout, func(dto contract.ElementStateDTO) bool {
		return dto.State == expected
	})
	if lastErr != nil {
		t.Fatalf("element %q never reached state %q: %v", id, expected, lastErr)
	}
	if lastState != expected {
		t.Fatalf("element %q never reached state %q within %s, last state: %q", id, expected, timeout, lastState)
	}
}

// waitForElementStateContains polls one element until its state contains the
// given substring.
func waitForElementStateContains(t *testing.T, drv driver.Driver, id, substring string, timeout time.Duration) {
	t.Helper()
	lastState, lastErr := pollElement(drv, id, timeout, func(dto contract.ElementStateDTO) bool {
		return strings.Contains(dto.State, substring)
	})
	if lastErr != nil {
		t.Fatalf("element %q never contained %q: %v", id, substring, lastErr)
	}
	if !strings.Contains(lastState, substring) {
		t.Fatalf("element %q never contained %q within %s, last state: %q", id, substring, timeout, lastState)
	}
}

// pollElement returns once the predicate holds or the timeout is spent. It
// reports the last observed state and the last driver error, leaving the
// verdict to the caller.
func pollElement(drv driver.Driver, id string, timeout time.Duration, done func(contract.ElementStateDTO) bool) (string, error) {
	deadline := time.Now().Add(timeout)
	var lastState string
	var lastErr error
	for {
		dto, err := drv.ElementState(id)
		lastErr = err
		if err == nil {
			lastState = dto.State
			if done(dto) {
				return lastState, nil
			}
		}
		if time.Now().After(deadline) {
			return lastState, lastErr
		}
		time.Sleep(verifyInterval())
	}
}
