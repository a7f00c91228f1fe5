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

// Package client talks to a daemon process over its HTTP API. It implements
// the same connection interface the in-process daemon does, so the client
// application is oblivious to which side of the process boundary it runs on.
package client

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/daemon"
	"github.com/veilnetwork/desktop/market"
	"github.com/veilnetwork/desktop/requests"
)

// Client gives access to a remote daemon over HTTP.
type Client struct {
	http    *requests.HTTPClient
	baseURL string
}

// New creates a client for the daemon listening at the given address.
func New(address string) *Client {
	return &Client{
		http:    requests.NewHTTPClient(requests.DefaultTimeout),
		baseURL: fmt.Sprintf("http://%s", address),
	}
}

// Connect requests a connection to the given server.
func (c *Client) Connect(proposal market.ServerProposal) error {
	payload := daemon.ConnectRequest{
		Country:  proposal.Country,
		Category: string(proposal.Category),
		Mode:     daemon.ModeSpecific,
	}
	req, err := requests.NewPutRequest(c.baseURL, "connection", payload)
	if err != nil {
		return err
	}
	return c.http.DoRequest(req)
}

// Cancel aborts a connection attempt in progress.
func (c *Client) Cancel() error {
	req, err := requests.NewDeleteRequest(c.baseURL, "connection", url.Values{"action": {"cancel"}})
	if err != nil {
		return err
	}
	return c.http.DoRequest(req)
}

// Disconnect closes the established connection.
func (c *Client) Disconnect() error {
	req, err := requests.NewDeleteRequest(c.baseURL, "connection", url.Values{})
	if err != nil {
		return err
	}
	return c.http.DoRequest(req)
}

// Status fetches the current connection status. Transport failures map to the
// Unknown state since the daemon may simply be gone.
func (c *Client) Status() connection.Status {
	req, err := requests.NewGetRequest(c.baseURL, "connection", url.Values{})
	if err != nil {
		return connection.Status{State: connection.Unknown}
	}
	var dto daemon.StatusDTO
	if err := c.http.DoRequestAndParseResponse(req, &dto); err != nil {
		log.Warn().Err(err).Msg("Failed to fetch connection status from daemon")
		return connection.Status{State: connection.Unknown}
	}
	return connection.Status{
		State:     connection.State(dto.Status),
		SessionID: dto.SessionID,
		Proposal: market.ServerProposal{
			Country:  dto.Country,
			Category: market.Category(dto.Category),
			EgressIP: dto.EgressIP,
		},
	}
}

// SetKillSwitch propagates the kill switch setting to the daemon.
func (c *Client) SetKillSwitch(enabled bool) error {
	req, err := requests.NewPutRequest(c.baseURL, "killswitch", daemon.KillSwitchRequest{Enabled: enabled})
	if err != nil {
		return err
	}
	return c.http.DoRequest(req)
}

// Drop simulates an unexpected connection loss on the daemon.
func (c *Client) Drop() error {
	req, err := requests.NewPostRequest(c.baseURL, "drop", nil)
	if err != nil {
		return err
	}
	return c.http.DoRequest(req)
}
