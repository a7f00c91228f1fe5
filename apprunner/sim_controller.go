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

package apprunner

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/clientapp"
	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/market"
)

// SimController runs the client in-process. Scenarios get the exact same
// local API surface as with a real child process, minus the process
// boundary, while the daemon they share stays alive across client restarts.
type SimController struct {
	conn      clientapp.ConnectionService
	proposals *market.Repository
	dataDir   string

	mu      sync.Mutex
	service *clientapp.Service
	address string
}

// NewSimController creates an in-process controller. The data directory keeps
// the client state between launches of the same controller.
func NewSimController(conn clientapp.ConnectionService, proposals *market.Repository, dataDir string) *SimController {
	return &SimController{conn: conn, proposals: proposals, dataDir: dataDir}
}

// Launch assembles and starts an in-process client on a random port.
func (sc *SimController) Launch(freshStart bool) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.service != nil {
		return ErrAlreadyRunning
	}

	service, err := clientapp.Bootstrap(clientapp.Options{
		DataDir:    sc.dataDir,
		APIAddress: "127.0.0.1:0",
		Username:   config.Current.GetString(config.HarnessUsername),
		Password:   config.Current.GetString(config.HarnessPassword),
		Conn:       sc.conn,
		Proposals:  sc.proposals,
		FreshStart: freshStart,
	})
	if err != nil {
		return err
	}

	address, err := service.Address()
	if err != nil {
		service.Stop()
		return err
	}
	if err := waitForAPI(address); err != nil {
		service.Stop()
		return err
	}

	sc.service = service
	sc.address = address
	return nil
}

// Close stops the client in an orderly fashion. The daemon connection is not
// touched.
func (sc *SimController) Close() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.service == nil {
		return ErrNotRunning
	}
	sc.service.Stop()
	sc.service = nil
	return nil
}

// Kill drops the client without any shutdown logic beyond releasing the
// state file lock, which the operating system would release for a real dead
// process anyway. Settings already written are safe, they hit the disk on
// every change.
func (sc *SimController) Kill() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.service == nil {
		return ErrNotRunning
	}
	log.Info().Msg("Simulating abrupt client termination")
	sc.service.Stop()
	sc.service = nil
	settleAfterKill()
	return nil
}

// Dispose stops the client if it is still up.
func (sc *SimController) Dispose() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.service != nil {
		sc.service.Stop()
		sc.service = nil
	}
	return nil
}

// APIAddress returns the local API address of the last launched client.
func (sc *SimController) APIAddress() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.address
}
