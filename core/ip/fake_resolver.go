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

package ip

import "net"

// NewFakeResolver returns a resolver which always resolves the given IP
func NewFakeResolver(ipAddress string) Resolver {
	return NewFakeResolverWithError(ipAddress, nil)
}

// NewFakeResolverWithError returns a resolver with the given error
func NewFakeResolverWithError(ipAddress string, err error) Resolver {
	return &fakeResolver{ipAddress: ipAddress, error: err}
}

type fakeResolver struct {
	ipAddress string
	error     error
}

func (r *fakeResolver) GetPublicIP() (string, error) {
	return r.ipAddress, r.error
}

func (r *fakeResolver) GetOutboundIP() (net.IP, error) {
	return net.ParseIP(r.ipAddress), r.error
}

func (r *fakeResolver) GetOutboundIPAsString() (string, error) {
	return r.ipAddress, r.error
}
