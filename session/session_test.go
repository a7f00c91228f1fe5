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

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilnetwork/desktop/apprunner"
	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/daemon"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/market"
)

func newController(t *testing.T) apprunner.Controller {
	config.Current.SetCLI(config.HarnessKillSettleDelay, 10*time.Millisecond)
	t.Cleanup(func() { config.Current.RemoveCLI(config.HarnessKillSettleDelay) })

	bus := eventbus.New()
	manager := connection.NewManager(bus, 1*time.Millisecond)
	d := daemon.New(manager, market.NewRepository(), "203.0.113.7")
	require.NoError(t, d.Subscribe(bus))
	return apprunner.NewSimController(d, d.Proposals(), t.TempDir())
}

func TestOpenGivesAuthenticatedSession(t *testing.T) {
	s, err := Open(newController(t), true)
	require.NoError(t, err)
	defer s.Close()

	assert.NotEmpty(t, s.ID)
	assert.True(t, s.API().Authorized())

	// the driver rides the same authenticated session
	state, err := s.Driver().ElementState(contract.ElementNavActiveScreen)
	assert.NoError(t, err)
	assert.Equal(t, contract.ScreenHome, state.State)
}

func TestSessionsGetDistinctIDs(t *testing.T) {
	first, err := Open(newController(t), true)
	require.NoError(t, err)
	first.Close()

	second, err := Open(newController(t), true)
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRelaunchRequiresNewLogin(t *testing.T) {
	s, err := Open(newController(t), true)
	require.NoError(t, err)
	defer s.Close()

	staleAPI := s.API()
	require.NoError(t, s.Kill())
	require.NoError(t, s.Relaunch(false))

	// the old token was signed by the dead run, the new one works
	assert.True(t, s.API().Authorized())
	assert.NotSame(t, staleAPI, s.API())

	_, err = s.API().ElementState(contract.ElementNavActiveScreen)
	assert.NoError(t, err)
}

func TestCloseIsIdempotentEnough(t *testing.T) {
	s, err := Open(newController(t), true)
	require.NoError(t, err)
	s.Close()
	s.Close()
}
