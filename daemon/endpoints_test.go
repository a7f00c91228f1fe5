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

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/market"
)

func newTestAPI(t *testing.T) (*Daemon, http.Handler) {
	bus := eventbus.New()
	manager := connection.NewManager(bus, 1*time.Millisecond)
	d := New(manager, market.NewRepository(), baselineIP)
	assert.NoError(t, d.Subscribe(bus))
	return d, NewRouter(d)
}

func TestConnectEndpointSelectsFastest(t *testing.T) {
	d, router := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPut, "/connection", strings.NewReader(`{"mode": "fastest"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)
	waitForState(t, d, connection.Connected)
	assert.Equal(t, market.CategoryStandard, d.Status().Proposal.Category)
}

func TestConnectEndpointRejectsUnknownCountry(t *testing.T) {
	_, router := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPut, "/connection", strings.NewReader(`{"country": "XX"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestConnectEndpointConflictsWhenBusy(t *testing.T) {
	d, router := newTestAPI(t)
	connect(t, d, "DE")

	req := httptest.NewRequest(http.MethodPut, "/connection", strings.NewReader(`{"country": "FR"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestStatusEndpointExposesSession(t *testing.T) {
	d, router := newTestAPI(t)
	proposal := connect(t, d, "US")

	req := httptest.NewRequest(http.MethodGet, "/connection", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var dto StatusDTO
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &dto))
	assert.Equal(t, string(connection.Connected), dto.Status)
	assert.NotEmpty(t, dto.SessionID)
	assert.Equal(t, proposal.EgressIP, dto.EgressIP)
}

func TestDisconnectEndpointWithoutConnection(t *testing.T) {
	_, router := newTestAPI(t)

	req := httptest.NewRequest(http.MethodDelete, "/connection", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestIPEndpointBlockedByKillSwitch(t *testing.T) {
	d, router := newTestAPI(t)
	assert.NoError(t, d.SetKillSwitch(true))
	connect(t, d, "NL")
	assert.NoError(t, d.Drop())

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestIPEndpointReturnsBaseline(t *testing.T) {
	_, router := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var dto IPDTO
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &dto))
	assert.Equal(t, baselineIP, dto.IP)
}
