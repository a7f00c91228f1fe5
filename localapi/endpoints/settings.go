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
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/localapi/utils"
)

type settingsProvider interface {
	Settings() (contract.SettingsDTO, error)
	UpdateSettings(settings contract.SettingsDTO) error
}

// SettingsEndpoint exposes the persisted client settings
type SettingsEndpoint struct {
	provider settingsProvider
}

// NewSettingsEndpoint creates the settings endpoint
func NewSettingsEndpoint(provider settingsProvider) *SettingsEndpoint {
	return &SettingsEndpoint{provider: provider}
}

// Get returns the current settings
func (se *SettingsEndpoint) Get(resp http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	settings, err := se.provider.Settings()
	if err != nil {
		utils.SendError(resp, err, http.StatusInternalServerError)
		return
	}
	utils.WriteAsJSON(settings, resp)
}

// Update replaces the current settings
func (se *SettingsEndpoint) Update(resp http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	var settings contract.SettingsDTO
	if err := json.NewDecoder(req.Body).Decode(&settings); err != nil {
		utils.SendError(resp, err, http.StatusBadRequest)
		return
	}

	if err := se.provider.UpdateSettings(settings); err != nil {
		utils.SendError(resp, err, http.StatusInternalServerError)
		return
	}
	utils.WriteAsJSON(settings, resp)
}
