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

// Package market holds the read-only server reference data used to
// parameterize connect actions.
package market

// Category is a server list category selectable by the user.
type Category string

const (
	// CategoryStandard is the plain server list.
	CategoryStandard = Category("standard")
	// CategorySecureCore routes through a hardened core server first.
	CategorySecureCore = Category("secure-core")
	// CategoryP2P is the peer-to-peer optimized list.
	CategoryP2P = Category("p2p")
	// CategoryTor is the Tor-exit list.
	CategoryTor = Category("tor")
)

// ServerProposal identifies a target endpoint by provider, country and category.
type ServerProposal struct {
	ProviderID string   `json:"provider_id"`
	Country    string   `json:"country"`
	Category   Category `json:"category"`
	// EgressIP is the public IP observed when connected to this server.
	EgressIP string `json:"egress_ip"`
}
