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

// Package client provides a fluent client of the application local API. It is
// the only transport the UI driver uses.
package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/requests"
)

// NewClient returns a client of the local API on the given address
func NewClient(address string) *Client {
	return &Client{
		http: requests.NewHTTPClient(requests.DefaultTimeout),
		base: "http://" + address,
	}
}

// Client talks to the client application local API
type Client struct {
	http  *requests.HTTPClient
	base  string
	token string
}

// Login authenticates the UI session and remembers the session token
func (c *Client) Login(username, password string) error {
	req, err := requests.NewPostRequest(c.base, "auth/login", contract.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	var token contract.TokenDTO
	if err := c.http.DoRequestAndParseResponse(req, &token); err != nil {
		return err
	}
	c.token = token.Token
	return nil
}

// Logout ends the UI session and drops the session token
func (c *Client) Logout() error {
	req, err := requests.NewPostRequest(c.base, "auth/logout", nil)
	if err != nil {
		return err
	}
	c.authorize(req)
	if err := c.http.DoRequest(req); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// ElementState reads the state of one UI element
func (c *Client) ElementState(id string) (contract.ElementStateDTO, error) {
	var state contract.ElementStateDTO
	req, err := requests.NewGetRequest(c.base, "ui/elements/"+url.PathEscape(id), nil)
	if err != nil {
		return state, err
	}
	c.authorize(req)
	err = c.http.DoRequestAndParseResponse(req, &state)
	return state, err
}

// InvokeElement triggers the action behind one UI element
func (c *Client) InvokeElement(id string, args map[string]string) error {
	req, err := requests.NewPostRequest(c.base, "ui/elements/"+url.PathEscape(id), contract.InvokeRequest{Args: args})
	if err != nil {
		return err
	}
	c.authorize(req)
	return c.http.DoRequest(req)
}

// Settings returns the persisted client settings
func (c *Client) Settings() (contract.SettingsDTO, error) {
	var settings contract.SettingsDTO
	req, err := requests.NewGetRequest(c.base, "settings", nil)
	if err != nil {
		return settings, err
	}
	c.authorize(req)
	err = c.http.DoRequestAndParseResponse(req, &settings)
	return settings, err
}

// SetSettings replaces the persisted client settings
func (c *Client) SetSettings(settings contract.SettingsDTO) error {
	req, err := requests.NewPutRequest(c.base, "settings", settings)
	if err != nil {
		return err
	}
	c.authorize(req)
	return c.http.DoRequest(req)
}

// Healthcheck returns the application health status
func (c *Client) Healthcheck() (contract.HealthCheckDTO, error) {
	var health contract.HealthCheckDTO
	req, err := requests.NewGetRequest(c.base, "healthcheck", nil)
	if err != nil {
		return health, err
	}
	err = c.http.DoRequestAndParseResponse(req, &health)
	return health, err
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// Authorized reports whether the client holds a session token
func (c *Client) Authorized() bool {
	return c.token != ""
}

func (c *Client) String() string {
	return fmt.Sprintf("localapi client of %s", c.base)
}
