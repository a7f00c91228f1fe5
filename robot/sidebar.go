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

// SidebarRobot drives the country sidebar.
type SidebarRobot struct {
	t   *testing.T
	drv driver.Driver
}

// NewSidebarRobot creates a sidebar robot.
func NewSidebarRobot(t *testing.T, drv driver.Driver) *SidebarRobot {
	return &SidebarRobot{t: t, drv: drv}
}

// SearchFor types a query into the sidebar search input.
func (r *SidebarRobot) SearchFor(query string) *SidebarRobot {
	invoke(r.t, r.drv, contract.ElementSidebarSearchInput,
		map[string]string{contract.ArgValue: query})
	return r
}

// ClearSearch empties the search input.
func (r *SidebarRobot) ClearSearch() *SidebarRobot {
	return r.SearchFor("")
}

// ConnectTo connects to the given country from its sidebar row.
func (r *SidebarRobot) ConnectTo(country string) *SidebarRobot {
	invoke(r.t, r.drv, contract.SidebarCountryRow(country), nil)
	return r
}

// ConnectVia connects to the given country through a categorized row
// (secure-core, p2p, tor).
func (r *SidebarRobot) ConnectVia(category, country string) *SidebarRobot {
	invoke(r.t, r.drv, contract.SidebarCategoryRow(category, country), nil)
	return r
}

// DisconnectFrom disconnects using the connected country row control.
func (r *SidebarRobot) DisconnectFrom(country string) *SidebarRobot {
	invoke(r.t, r.drv, contract.SidebarCountryDisconnect(country), nil)
	return r
}

// Verify enters the assertion half of the robot.
func (r *SidebarRobot) Verify() *SidebarVerify {
	return &SidebarVerify{t: r.t, drv: r.drv}
}

// SidebarVerify asserts on the sidebar with bounded polling.
type SidebarVerify struct {
	t   *testing.T
	drv driver.Driver
}

// CountryListed waits until the given country shows up in the country list.
func (v *SidebarVerify) CountryListed(country string) *SidebarVerify {
	waitForElementStateContains(v.t, v.drv, contract.ElementSidebarCountryList,
		country, verifyTimeout())
	return v
}

// ListShows waits until the country list shows exactly the given rendering.
func (v *SidebarVerify) ListShows(list string) *SidebarVerify {
	waitForElementState(v.t, v.drv, contract.ElementSidebarCountryList,
		list, verifyTimeout())
	return v
}
