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
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/veilnetwork/desktop/clientapp"
	"github.com/veilnetwork/desktop/config"
	daemonclient "github.com/veilnetwork/desktop/daemon/client"
	"github.com/veilnetwork/desktop/market"
	"github.com/veilnetwork/desktop/ui/tray"
)

var flagTray = cli.BoolFlag{
	Name:  "tray",
	Usage: "Show the system tray indicator",
}

func clientCommand() *cli.Command {
	return &cli.Command{
		Name:  "client",
		Usage: "Run the client application against a daemon",
		Flags: []cli.Flag{&flagTray},
		Action: func(ctx *cli.Context) error {
			if err := configureFromContext(ctx); err != nil {
				return err
			}
			return runClient(ctx.Bool(flagTray.Name), ctx.Bool(config.FlagFreshStart.Name))
		},
	}
}

func runClient(withTray, freshStart bool) error {
	conn := daemonclient.New(config.Current.GetString(config.HarnessDaemonAPIAddress))

	service, err := clientapp.Bootstrap(clientapp.Options{
		DataDir:    config.Current.GetString(config.DesktopDataDir),
		APIAddress: config.Current.GetString(config.HarnessClientAPIAddress),
		Username:   config.Current.GetString(config.HarnessUsername),
		Password:   config.Current.GetString(config.HarnessPassword),
		Conn:       conn,
		Proposals:  market.NewRepository(),
		FreshStart: freshStart,
	})
	if err != nil {
		return err
	}

	if withTray {
		indicator := tray.NewIndicator(tray.NewIconRegistry(tray.DefaultPalette()))
		if err := indicator.Subscribe(service.Bus()); err != nil {
			log.Warn().Err(err).Msg("Tray subscription failed")
		} else {
			go indicator.Run(func() {})
			defer indicator.Stop()
		}
	}

	stopOnInterrupt(service.Stop)
	return ignoreClosed(service.Wait())
}
