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

import (
	"github.com/urfave/cli/v2"
)

var (
	// FlagConfigDir directory containing the user configuration file.
	FlagConfigDir = cli.StringFlag{
		Name:  "config-dir",
		Usage: "Directory containing the user configuration file",
	}
	// FlagDataDir client data directory.
	FlagDataDir = cli.StringFlag{
		Name:  "data-dir",
		Usage: "Directory for persisted client state",
	}
	// FlagAPIAddress local API listen address.
	FlagAPIAddress = cli.StringFlag{
		Name:  "api.address",
		Usage: "Local API address to listen on",
		Value: "127.0.0.1:4050",
	}
	// FlagDaemonAddress connection daemon API address.
	FlagDaemonAddress = cli.StringFlag{
		Name:  "daemon.address",
		Usage: "Connection daemon API address",
		Value: "127.0.0.1:4051",
	}
	// FlagBaselineIP egress IP reported while disconnected.
	FlagBaselineIP = cli.StringFlag{
		Name:  "baseline-ip",
		Usage: "Egress IP reported by the identity endpoint while disconnected",
		Value: "203.0.113.7",
	}
	// FlagDialDelay time the simulated daemon spends in Connecting.
	FlagDialDelay = cli.DurationFlag{
		Name:  "dial-delay",
		Usage: "How long the simulated daemon stays in the Connecting state",
	}
	// FlagFreshStart wipe persisted client state before starting.
	FlagFreshStart = cli.BoolFlag{
		Name:  "fresh",
		Usage: "Start with no prior persisted state",
	}
)

// RegisterFlagsNode registers common client/daemon flags
func RegisterFlagsNode(flags *[]cli.Flag) {
	*flags = append(*flags,
		&FlagConfigDir,
		&FlagDataDir,
		&FlagAPIAddress,
		&FlagDaemonAddress,
		&FlagBaselineIP,
		&FlagDialDelay,
		&FlagFreshStart,
	)
}

// ParseFlagsNode parses common flags into the global config
func ParseFlagsNode(ctx *cli.Context) {
	if ctx.IsSet(FlagDataDir.Name) {
		Current.SetCLI(DesktopDataDir, ctx.String(FlagDataDir.Name))
	}
	if ctx.IsSet(FlagAPIAddress.Name) {
		Current.SetCLI(HarnessClientAPIAddress, ctx.String(FlagAPIAddress.Name))
	}
	if ctx.IsSet(FlagDaemonAddress.Name) {
		Current.SetCLI(HarnessDaemonAPIAddress, ctx.String(FlagDaemonAddress.Name))
	}
	if ctx.IsSet(FlagBaselineIP.Name) {
		Current.SetCLI(DesktopBaselineIP, ctx.String(FlagBaselineIP.Name))
	}
	if ctx.IsSet(FlagDialDelay.Name) {
		Current.SetCLI(DesktopDialDelay, ctx.Duration(FlagDialDelay.Name))
	}
}
