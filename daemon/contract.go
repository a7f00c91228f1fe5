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

package daemon

// ConnectRequest selects the server to connect to.
// swagger:model ConnectRequestDTO
type ConnectRequest struct {
	// example: DE
	Country string `json:"country"`
	// example: standard
	Category string `json:"category"`
	// one of "specific", "fastest", "random"
	// example: fastest
	Mode string `json:"mode"`
}

// StatusDTO holds connection status and session info.
// swagger:model StatusDTO
type StatusDTO struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id,omitempty"`
	Country   string `json:"country,omitempty"`
	Category  string `json:"category,omitempty"`
	EgressIP  string `json:"egress_ip,omitempty"`
}

// IPDTO holds the egress IP address.
// swagger:model IPDTO
type IPDTO struct {
	IP string `json:"IP"`
}

// KillSwitchRequest toggles the kill switch policy.
// swagger:model KillSwitchRequestDTO
type KillSwitchRequest struct {
	Enabled bool `json:"enabled"`
}

// Connect selector modes.
const (
	ModeSpecific = "specific"
	ModeFastest  = "fastest"
	ModeRandom   = "random"
)
