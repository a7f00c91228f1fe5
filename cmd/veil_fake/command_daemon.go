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

package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/daemon"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi"
	"github.com/veilnetwork/desktop/market"
)

func daemonCommand() *cli.Command {
	return &cli.Command{
		Name:  "daemon",
		Usage: "Run the simulated connection daemon",
		Action: func(ctx *cli.Context) error {
			if err := configureFromContext(ctx); err != nil {
				return err
			}
			return runDaemon()
		},
	}
}

func runDaemon() error {
	bus := eventbus.New()
	manager := connection.NewManager(bus, config.Current.GetDuration(config.DesktopDialDelay))
	d := daemon.New(manager, market.NewRepository(), config.Current.GetString(config.DesktopBaselineIP))
	if err := d.Subscribe(bus); err != nil {
		return err
	}

	address := config.Current.GetString(config.HarnessDaemonAPIAddress)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	server := localapi.NewServer(listener, daemon.NewRouter(d))
	server.StartServing()
	log.Info().Msgf("Daemon API started on: %s", address)

	stopOnInterrupt(server.Stop)
	return ignoreClosed(server.Wait())
}

// ignoreClosed filters the accept error of a deliberately closed listener.
func ignoreClosed(err error) error {
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// stopOnInterrupt runs the stop function once on SIGINT or SIGTERM.
func stopOnInterrupt(stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.Info().Msgf("Received signal: %v, stopping", sig)
		stop()
	}()
}
