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

package endpoints

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/localapi/utils"
	"github.com/veilnetwork/desktop/metadata"
)

// HealthCheckEndpoint responds to readiness probes
type HealthCheckEndpoint struct {
	startTime       time.Time
	currentTimeFunc func() time.Time
}

// HealthCheckEndpointFactory creates a structure with single HealthCheck
// method, currentTimeFunc is injected for easier testing
func HealthCheckEndpointFactory(currentTimeFunc func() time.Time) *HealthCheckEndpoint {
	return &HealthCheckEndpoint{
		startTime:       currentTimeFunc(),
		currentTimeFunc: currentTimeFunc,
	}
}

// HealthCheck responds with the application uptime and build info
func (hce *HealthCheckEndpoint) HealthCheck(resp http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	status := contract.HealthCheckDTO{
		Uptime: hce.currentTimeFunc().Sub(hce.startTime).String(),
		Version: contract.BuildInfoDTO{
			Commit:      metadata.BuildCommit,
			Branch:      metadata.BuildBranch,
			BuildNumber: metadata.BuildNumber,
		},
	}
	utils.WriteAsJSON(status, resp)
}
