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
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/localapi/utils"
)

type elementProvider interface {
	ElementState(id string) (contract.ElementStateDTO, error)
	InvokeElement(id string, args map[string]string) error
}

// ElementsEndpoint exposes UI element state reads and action invokes
type ElementsEndpoint struct {
	provider elementProvider
}

// NewElementsEndpoint creates the UI elements endpoint
func NewElementsEndpoint(provider elementProvider) *ElementsEndpoint {
	return &ElementsEndpoint{provider: provider}
}

// State reads the state of a single UI element
func (ee *ElementsEndpoint) State(resp http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	state, err := ee.provider.ElementState(params.ByName("id"))
	if err != nil {
		utils.SendError(resp, err, elementErrorCode(err))
		return
	}
	utils.WriteAsJSON(state, resp)
}

// Invoke triggers the action behind a single UI element
func (ee *ElementsEndpoint) Invoke(resp http.ResponseWriter, req *http.Request, params httprouter.Params) {
	var request contract.InvokeRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil && err != io.EOF {
		utils.SendError(resp, err, http.StatusBadRequest)
		return
	}

	if err := ee.provider.InvokeElement(params.ByName("id"), request.Args); err != nil {
		utils.SendError(resp, err, elementErrorCode(err))
		return
	}
	resp.WriteHeader(http.StatusAccepted)
}

func elementErrorCode(err error) int {
	switch errors.Cause(err) {
	case contract.ErrElementNotFound:
		return http.StatusNotFound
	case contract.ErrElementNotVisible:
		return http.StatusConflict
	case contract.ErrElementDisabled:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
