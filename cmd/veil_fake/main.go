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

// veil_fake is the simulated desktop stack in one binary: a connection
// daemon and a client application, started as separate processes. The e2e
// harness launches these the same way a user launches the real thing.
package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/veilnetwork/desktop/config"
	"github.com/veilnetwork/desktop/logconfig"
	"github.com/veilnetwork/desktop/metadata"
)

func main() {
	logconfig.Bootstrap()

	app := &cli.App{
		Name:    "veil_fake",
		Usage:   "Simulated VeilNetwork desktop stack for end-to-end testing",
		Version: metadata.VersionAsString(),
		Commands: []*cli.Command{
			daemonCommand(),
			clientCommand(),
		},
	}
	registerFlags(&app.Flags)

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("veil_fake failed")
		os.Exit(1)
	}
}

func registerFlags(flags *[]cli.Flag) {
	config.RegisterFlagsNode(flags)
	logconfig.RegisterFlags(flags)
}

// configureFromContext applies CLI flags and the optional user config file to
// the global config, and finalizes logging.
func configureFromContext(ctx *cli.Context) error {
	config.ParseFlagsNode(ctx)

	if configDir := ctx.String(config.FlagConfigDir.Name); configDir != "" {
		if err := config.Current.LoadUserConfig(filepath.Join(configDir, "config.toml")); err != nil {
			return err
		}
	}

	logOptions := logconfig.ParseFlags(ctx, config.Current.GetString(config.DesktopDataDir))
	logconfig.Configure(&logOptions)
	return nil
}
