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
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilnetwork/desktop/core/auth"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi/client"
	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/localapi/endpoints"
)

// appFake backs the element and settings endpoints with in-memory state.
type appFake struct {
	mu       sync.Mutex
	settings contract.SettingsDTO
}

func (a *appFake) ElementState(id string) (contract.ElementStateDTO, error) {
	if id != contract.ElementNavActiveScreen {
		return contract.ElementStateDTO{}, contract.ErrElementNotFound
	}
	return contract.ElementStateDTO{ID: id, State: contract.ScreenHome, Visible: true}, nil
}

func (a *appFake) InvokeElement(id string, args map[string]string) error {
	if id != contract.ElementNavHomeButton {
		return contract.ErrElementNotFound
	}
	return nil
}

func (a *appFake) Settings() (contract.SettingsDTO, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings, nil
}

func (a *appFake) UpdateSettings(settings contract.SettingsDTO) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings = settings
	return nil
}

func newTestServer(t *testing.T) *httptest.Server {
	authenticator, err := auth.NewJWTAuthenticator()
	require.NoError(t, err)

	app := &appFake{}
	router := NewAPIRouter(
		endpoints.HealthCheckEndpointFactory(time.Now),
		endpoints.NewAuthenticationAPI(auth.NewCredentialsChecker("veil", "veil"), authenticator, eventbus.New()),
		endpoints.NewElementsEndpoint(app),
		endpoints.NewSettingsEndpoint(app),
		endpoints.NewTokenGuard(authenticator),
	)

	server := httptest.NewServer(DisableCaching(router))
	t.Cleanup(server.Close)
	return server
}

func address(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

func TestFullClientRoundTrip(t *testing.T) {
	server := newTestServer(t)
	api := client.NewClient(address(server))

	// healthcheck needs no session
	health, err := api.Healthcheck()
	assert.NoError(t, err)
	assert.NotEmpty(t, health.Uptime)

	// everything else does
	_, err = api.ElementState(contract.ElementNavActiveScreen)
	assert.Error(t, err)

	require.NoError(t, api.Login("veil", "veil"))
	assert.True(t, api.Authorized())

	state, err := api.ElementState(contract.ElementNavActiveScreen)
	assert.NoError(t, err)
	assert.Equal(t, contract.ScreenHome, state.State)

	assert.NoError(t, api.InvokeElement(contract.ElementNavHomeButton, nil))

	require.NoError(t, api.SetSettings(contract.SettingsDTO{AutoConnect: true}))
	settings, err := api.Settings()
	assert.NoError(t, err)
	assert.True(t, settings.AutoConnect)

	assert.NoError(t, api.Logout())
	assert.False(t, api.Authorized())

	_, err = api.Settings()
	assert.Error(t, err, "session is gone after logout")
}

func TestLoginFailureLeavesClientUnauthorized(t *testing.T) {
	server := newTestServer(t)
	api := client.NewClient(address(server))

	assert.Error(t, api.Login("veil", "nope"))
	assert.False(t, api.Authorized())
}
