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

package config

import "time"

// Harness configuration keys. All polling intervals and retry bounds used by
// the harness are configured here, with the defaults documented below.
const (
	// HarnessClientBinary is the path of the client binary under test.
	// When empty, scenarios run against the in-process simulator.
	HarnessClientBinary = "harness.client.binary"
	// HarnessClientAPIAddress is the client local API address.
	HarnessClientAPIAddress = "harness.client.api-address"
	// HarnessDaemonAPIAddress is the connection daemon API address.
	HarnessDaemonAPIAddress = "harness.daemon.api-address"
	// HarnessIdentityURL is the network identity service returning the public IP.
	HarnessIdentityURL = "harness.identity.url"
	// HarnessUsername is the account used for the fresh login of every scenario.
	HarnessUsername = "harness.credentials.username"
	// HarnessPassword is the password for HarnessUsername.
	HarnessPassword = "harness.credentials.password"
	// HarnessVerifyInterval is the poll interval of robot verifications.
	HarnessVerifyInterval = "harness.verify.interval"
	// HarnessVerifyTimeout bounds non-connection robot verifications.
	HarnessVerifyTimeout = "harness.verify.timeout"
	// HarnessConnectTimeout bounds connect/disconnect verifications.
	HarnessConnectTimeout = "harness.verify.connect-timeout"
	// HarnessLaunchTimeout bounds waiting for the app to become interactable.
	HarnessLaunchTimeout = "harness.launch.timeout"
	// HarnessKillSettleDelay is the settle time before probing after a kill.
	HarnessKillSettleDelay = "harness.kill.settle-delay"
	// HarnessProbeInitialInterval is the first probe retry delay.
	HarnessProbeInitialInterval = "harness.probe.initial-interval"
	// HarnessProbeMaxElapsed bounds the total probe retry time.
	HarnessProbeMaxElapsed = "harness.probe.max-elapsed"
	// HarnessProbeMaxRetries bounds the probe retry count.
	HarnessProbeMaxRetries = "harness.probe.max-retries"
)

// Client (simulator) configuration keys.
const (
	// DesktopDataDir is where the client keeps its persisted state.
	DesktopDataDir = "desktop.data-dir"
	// DesktopBaselineIP is the egress IP observed while disconnected.
	DesktopBaselineIP = "desktop.baseline-ip"
	// DesktopDialDelay is how long the simulated daemon stays in Connecting.
	DesktopDialDelay = "desktop.dial-delay"
)

func setDefaults(cfg *Config) {
	cfg.SetDefault(HarnessClientBinary, "")
	cfg.SetDefault(HarnessClientAPIAddress, "127.0.0.1:4050")
	cfg.SetDefault(HarnessDaemonAPIAddress, "127.0.0.1:4051")
	cfg.SetDefault(HarnessIdentityURL, "https://api.ipify.org/?format=json")
	cfg.SetDefault(HarnessUsername, "veil")
	cfg.SetDefault(HarnessPassword, "veil")
	cfg.SetDefault(HarnessVerifyInterval, 500*time.Millisecond)
	cfg.SetDefault(HarnessVerifyTimeout, 10*time.Second)
	cfg.SetDefault(HarnessConnectTimeout, 30*time.Second)
	cfg.SetDefault(HarnessLaunchTimeout, 20*time.Second)
	cfg.SetDefault(HarnessKillSettleDelay, 3*time.Second)
	cfg.SetDefault(HarnessProbeInitialInterval, 2*time.Second)
	cfg.SetDefault(HarnessProbeMaxElapsed, 20*time.Second)
	cfg.SetDefault(HarnessProbeMaxRetries, 10)

	cfg.SetDefault(DesktopDataDir, "")
	cfg.SetDefault(DesktopBaselineIP, "203.0.113.7")
	cfg.SetDefault(DesktopDialDelay, time.Second)
}
