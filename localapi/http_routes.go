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

package localapi

import (
	"github.com/julienschmidt/httprouter"

	"github.com/veilnetwork/desktop/localapi/endpoints"
)

// NewAPIRouter assembles the local API routes of the client application
func NewAPIRouter(
	healthAPI *endpoints.HealthCheckEndpoint,
	authAPI *endpoints.AuthenticationAPI,
	elementsAPI *endpoints.ElementsEndpoint,
	settingsAPI *endpoints.SettingsEndpoint,
	guard *endpoints.TokenGuard,
) *httprouter.Router {
	router := httprouter.New()
	router.HandleMethodNotAllowed = true

	router.GET("/healthcheck", healthAPI.HealthCheck)

	router.POST("/auth/login", authAPI.Login)
	router.POST("/auth/logout", guard.Protect(authAPI.Logout))

	router.GET("/ui/elements/:id", guard.Protect(elementsAPI.State))
	router.POST("/ui/elements/:id", guard.Protect(elementsAPI.Invoke))

	router.GET("/settings", guard.Protect(settingsAPI.Get))
	router.PUT("/settings", guard.Protect(settingsAPI.Update))

	return router
}
