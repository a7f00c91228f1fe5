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

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_PrecedenceOrder(t *testing.T) {
	cfg := NewConfig()
	cfg.SetDefault("verify.timeout", "10s")

	assert.Equal(t, "10s", cfg.GetString("verify.timeout"))

	cfg.SetUser("verify.timeout", "20s")
	assert.Equal(t, "20s", cfg.GetString("verify.timeout"))

	cfg.SetCLI("verify.timeout", "30s")
	assert.Equal(t, "30s", cfg.GetString("verify.timeout"))

	cfg.RemoveCLI("verify.timeout")
	assert.Equal(t, "20s", cfg.GetString("verify.timeout"))

	cfg.RemoveUser("verify.timeout")
	assert.Equal(t, "10s", cfg.GetString("verify.timeout"))
}

func TestGetDuration(t *testing.T) {
	cfg := NewConfig()
	cfg.SetDefault("kill.settle-delay", 3*time.Second)

	assert.Equal(t, 3*time.Second, cfg.GetDuration("kill.settle-delay"))
}

func TestUserConfig_SaveAndReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "desktopconfig")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	location := filepath.Join(dir, "config.toml")
	require.NoError(t, ioutil.WriteFile(location, []byte(""), 0700))

	cfg := NewConfig()
	require.NoError(t, cfg.LoadUserConfig(location))
	cfg.SetUser("desktop.auto-connect", true)
	require.NoError(t, cfg.SaveUserConfig())

	reloaded := NewConfig()
	require.NoError(t, reloaded.LoadUserConfig(location))
	assert.True(t, reloaded.GetBool("desktop.auto-connect"))
}

func TestDefaults_AreRegistered(t *testing.T) {
	cfg := NewConfig()
	setDefaults(cfg)

	assert.Equal(t, "127.0.0.1:4050", cfg.GetString(HarnessClientAPIAddress))
	assert.Equal(t, 10, cfg.GetInt(HarnessProbeMaxRetries))
	assert.Equal(t, 500*time.Millisecond, cfg.GetDuration(HarnessVerifyInterval))
}
