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

package clientapp

import (
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/core/auth"
	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/core/storage/boltdb"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi"
	"github.com/veilnetwork/desktop/localapi/endpoints"
	"github.com/veilnetwork/desktop/market"
)

// stateWatchInterval is how often the client polls the daemon for connection
// state changes.
const stateWatchInterval = 100 * time.Millisecond

// Options hold everything needed to assemble a running client.
type Options struct {
	DataDir    string
	APIAddress string
	Username   string
	Password   string
	Conn       ConnectionService
	Proposals  *market.Repository
	// FreshStart wipes the data directory before opening storage, giving the
	// client the state of a first-ever launch.
	FreshStart bool
}

// Service is an assembled, serving client application.
type Service struct {
	app     *App
	bus     eventbus.EventBus
	storage *boltdb.Bolt
	server  localapi.APIServer
	watch   chan struct{}
}

// Bootstrap wires storage, authentication and the local API together and
// starts serving. Session tokens are signed with a key generated here, so
// tokens never survive a restart.
func Bootstrap(options Options) (*Service, error) {
	if options.FreshStart {
		if err := os.RemoveAll(options.DataDir); err != nil {
			return nil, errors.Wrap(err, "failed to wipe data directory")
		}
	}
	if err := os.MkdirAll(options.DataDir, 0700); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}

	storage, err := boltdb.NewStorage(options.DataDir)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New()
	app := NewApp(options.Conn, options.Proposals, NewSettingsStore(storage, bus))

	authenticator, err := auth.NewJWTAuthenticator()
	if err != nil {
		storage.Close()
		return nil, err
	}
	credentials := auth.NewCredentialsChecker(options.Username, options.Password)

	router := localapi.NewAPIRouter(
		endpoints.HealthCheckEndpointFactory(time.Now),
		endpoints.NewAuthenticationAPI(credentials, authenticator, bus),
		endpoints.NewElementsEndpoint(app),
		endpoints.NewSettingsEndpoint(app),
		endpoints.NewTokenGuard(authenticator),
	)

	listener, err := net.Listen("tcp", options.APIAddress)
	if err != nil {
		storage.Close()
		return nil, errors.Wrap(err, "failed to bind local API address")
	}

	server := localapi.NewServer(listener, router)
	server.StartServing()
	address, _ := server.Address()
	log.Info().Msgf("Client local API started on: %s", address)

	service := &Service{app: app, bus: bus, storage: storage, server: server, watch: make(chan struct{})}
	go service.watchConnectionState()
	if err := app.Start(); err != nil {
		service.Stop()
		return nil, err
	}
	return service, nil
}

// watchConnectionState mirrors daemon state changes onto the client event
// bus, where presenters such as the tray listen. The daemon lives in another
// process, polling its status is how the client observes it.
func (s *Service) watchConnectionState() {
	last := connection.State("")
	ticker := time.NewTicker(stateWatchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.watch:
			return
		case <-ticker.C:
			status := s.app.conn.Status()
			if status.State != last {
				last = status.State
				s.bus.Publish(connection.AppTopicConnectionState, connection.AppEventConnectionState{
					State:       status.State,
					SessionInfo: status,
				})
			}
		}
	}
}

// App exposes the application model behind this service.
func (s *Service) App() *App {
	return s.app
}

// Bus exposes the application event bus.
func (s *Service) Bus() eventbus.EventBus {
	return s.bus
}

// Address returns the bound local API address.
func (s *Service) Address() (string, error) {
	return s.server.Address()
}

// Stop shuts the service down in an orderly fashion. The daemon connection is
// left alone: closing the client window never disconnects.
func (s *Service) Stop() {
	close(s.watch)
	s.server.Stop()
	if err := s.storage.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close client storage")
	}
}

// Wait blocks until the local API stops serving.
func (s *Service) Wait() error {
	return s.server.Wait()
}
