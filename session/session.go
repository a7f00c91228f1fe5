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

// Package session boots the client into a known, authenticated state. Every
// scenario opens its own session: the app is launched, a fresh login is
// performed, and everything is torn down at the end no matter how the
// scenario went.
package session

import (
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/apprunner"
	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/driver/local"
	"github.com/veilnetwork/desktop/localapi/client"
)

// Session is one authenticated run of the client application.
type Session struct {
	// ID tags all artifacts of this session run.
	ID string

	controller apprunner.Controller
	api        *client.Client
	driver     *local.Driver
}

// Open launches the client and logs in with the harness credentials.
func Open(controller apprunner.Controller, freshStart bool) (*Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	s := &Session{ID: id.String(), controller: controller}
	log.Info().Msgf("Opening session %s, fresh start: %t", s.ID, freshStart)

	if err := controller.Launch(freshStart); err != nil {
		return nil, errors.Wrap(err, "failed to launch client")
	}
	if err := s.login(); err != nil {
		controller.Dispose()
		return nil, err
	}
	return s, nil
}

func (s *Session) login() error {
	api := client.NewClient(s.controller.APIAddress())
	username := config.Current.GetString(config.HarnessUsername)
	password := config.Current.GetString(config.HarnessPassword)
	if err := api.Login(username, password); err != nil {
		return errors.Wrap(err, "failed to log in")
	}
	s.api = api
	s.driver = local.NewDriver(api)
	return nil
}

// API returns the authenticated local API client of this session.
func (s *Session) API() *client.Client {
	return s.api
}

// Driver returns the element driver of this session.
func (s *Session) Driver() *local.Driver {
	return s.driver
}

// Kill terminates the client abruptly. The session keeps its identity, call
// Relaunch to get a usable client back.
func (s *Session) Kill() error {
	return s.controller.Kill()
}

// CloseApp exits the client gracefully without ending the session.
func (s *Session) CloseApp() error {
	return s.controller.Close()
}

// Relaunch brings the client back after a Kill or CloseApp and logs in
// again. Tokens of the previous run are gone, the new run has a new signing
// key. A fresh start wipes the persisted client state first.
func (s *Session) Relaunch(freshStart bool) error {
	if err := s.controller.Launch(freshStart); err != nil {
		return errors.Wrap(err, "failed to relaunch client")
	}
	return s.login()
}

// Close logs out, exits the client and disposes the controller. Safe to
// defer right after Open.
func (s *Session) Close() {
	log.Info().Msgf("Closing session %s", s.ID)
	if s.api != nil && s.api.Authorized() {
		if err := s.api.Logout(); err != nil {
			log.Warn().Err(err).Msg("Session logout failed")
		}
	}
	if err := s.controller.Close(); err != nil && err != apprunner.ErrNotRunning {
		log.Warn().Err(err).Msg("Session client close failed")
	}
	if err := s.controller.Dispose(); err != nil {
		log.Warn().Err(err).Msg("Session controller dispose failed")
	}
}
