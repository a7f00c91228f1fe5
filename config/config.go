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

// Package config stores app configuration: default values, user configuration
// file and CLI flags, in increasing order of precedence.
package config

import (
	"encoding/json"
	"io/ioutil"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/veilnetwork/desktop/eventbus"
)

// Topic returns event bus topic for the given config key to listen for its updates
func Topic(configKey string) string {
	return "config:" + configKey
}

// Config stores app configuration: default values + user configuration + CLI flags
type Config struct {
	userConfigLocation string
	defaults           map[string]interface{}
	user               map[string]interface{}
	cli                map[string]interface{}
	eventBus           eventbus.EventBus
}

// Current global configuration instance
var Current *Config

func init() {
	Current = NewConfig()
	setDefaults(Current)
}

// NewConfig creates a new configuration instance
func NewConfig() *Config {
	return &Config{
		userConfigLocation: "",
		defaults:           make(map[string]interface{}),
		user:               make(map[string]interface{}),
		cli:                make(map[string]interface{}),
	}
}

func (cfg *Config) userConfigLoaded() bool {
	return cfg.userConfigLocation != ""
}

// EnableEventPublishing enables config event publishing to the event bus
func (cfg *Config) EnableEventPublishing(eb eventbus.EventBus) {
	cfg.eventBus = eb
}

// LoadUserConfig loads and remembers user config location
func (cfg *Config) LoadUserConfig(location string) error {
	log.Debug().Msg("Loading user configuration: " + location)
	cfg.userConfigLocation = location
	_, err := toml.DecodeFile(cfg.userConfigLocation, &cfg.user)
	if err != nil {
		return errors.Wrap(err, "failed to decode configuration file")
	}
	cfgJSON, err := json.Marshal(cfg.user)
	if err != nil {
		return err
	}
	log.Info().Msg("User configuration loaded: " + string(cfgJSON))
	return nil
}

// SaveUserConfig saves user configuration to the file from which it was loaded
func (cfg *Config) SaveUserConfig() error {
	log.Info().Msg("Saving user configuration")
	if !cfg.userConfigLoaded() {
		return errors.New("user configuration cannot be saved, because it must be loaded first")
	}
	var out strings.Builder
	err := toml.NewEncoder(&out).Encode(cfg.user)
	if err != nil {
		return errors.Wrap(err, "failed to write configuration as toml")
	}
	err = ioutil.WriteFile(cfg.userConfigLocation, []byte(out.String()), 0700)
	if err != nil {
		return errors.Wrap(err, "failed to write configuration to file")
	}
	return nil
}

// SetDefault sets default value for key
func (cfg *Config) SetDefault(key string, value interface{}) {
	cfg.set(&cfg.defaults, key, value)
}

// SetUser sets user configuration value for key
func (cfg *Config) SetUser(key string, value interface{}) {
	if cfg.eventBus != nil {
		cfg.eventBus.Publish(Topic(key), value)
	}
	cfg.set(&cfg.user, key, value)
}

// SetCLI sets value passed via CLI flag for key
func (cfg *Config) SetCLI(key string, value interface{}) {
	cfg.set(&cfg.cli, key, value)
}

// RemoveUser removes user configuration value for key
func (cfg *Config) RemoveUser(key string) {
	cfg.remove(&cfg.user, key)
}

// RemoveCLI removes configured CLI flag value by key
func (cfg *Config) RemoveCLI(key string) {
	cfg.remove(&cfg.cli, key)
}

func (cfg *Config) set(configMap *map[string]interface{}, key string, value interface{}) {
	key = strings.ToLower(key)
	segments := strings.Split(key, ".")

	lastKey := segments[len(segments)-1]
	deepestMap := deepSearch(*configMap, segments[0:len(segments)-1])
	deepestMap[lastKey] = value
}

func (cfg *Config) remove(configMap *map[string]interface{}, key string) {
	key = strings.ToLower(key)
	segments := strings.Split(key, ".")

	lastKey := segments[len(segments)-1]
	deepestMap := deepSearch(*configMap, segments[0:len(segments)-1])
	delete(deepestMap, lastKey)
}

// Get gets stored config value as-is
func (cfg *Config) Get(key string) interface{} {
	segments := strings.Split(strings.ToLower(key), ".")
	cliValue := searchMap(cfg.cli, segments)
	if cliValue != nil {
		return cliValue
	}
	userValue := searchMap(cfg.user, segments)
	if userValue != nil {
		return userValue
	}
	return searchMap(cfg.defaults, segments)
}

// GetInt gets config value as int
func (cfg *Config) GetInt(key string) int {
	return cast.ToInt(cfg.Get(key))
}

// GetString gets config value as string
func (cfg *Config) GetString(key string) string {
	return cast.ToString(cfg.Get(key))
}

// GetBool gets config value as bool
func (cfg *Config) GetBool(key string) bool {
	return cast.ToBool(cfg.Get(key))
}

// GetDuration gets config value as time.Duration
func (cfg *Config) GetDuration(key string) time.Duration {
	return cast.ToDuration(cfg.Get(key))
}

// searchMap recursively searches for a value for path segments in source map
func searchMap(source map[string]interface{}, path []string) interface{} {
	if len(path) == 0 {
		return source
	}

	next, ok := source[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return next
	}

	switch typed := next.(type) {
	case map[interface{}]interface{}:
		return searchMap(cast.ToStringMap(typed), path[1:])
	case map[string]interface{}:
		return searchMap(typed, path[1:])
	default:
		return nil
	}
}

// deepSearch finds (or creates) the innermost map for path in m
func deepSearch(m map[string]interface{}, path []string) map[string]interface{} {
	for _, k := range path {
		next, ok := m[k]
		if !ok {
			nextMap := make(map[string]interface{})
			m[k] = nextMap
			m = nextMap
			continue
		}
		nextMap, ok := next.(map[string]interface{})
		if !ok {
			nextMap = make(map[string]interface{})
			m[k] = nextMap
		}
		m = nextMap
	}
	return m
}
