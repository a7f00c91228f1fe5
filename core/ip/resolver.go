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

// Package ip resolves the externally visible IP address of this machine. The
// public IP lookup is the out-of-band probe confirming what the connection
// UI claims.
package ip

import (
	"context"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/requests"
)

const apiClient = "veil-desktop/goclient"

// Resolver allows resolving current public and outbound IPs
type Resolver interface {
	GetOutboundIP() (net.IP, error)
	GetOutboundIPAsString() (string, error)
	GetPublicIP() (string, error)
}

// RetryOptions bound the retries of the public IP lookup.
type RetryOptions struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
	MaxRetries      uint64
	RequestTimeout  time.Duration
}

// DefaultRetryOptions returns the retry bounds used when none are configured.
func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		InitialInterval: 2 * time.Second,
		MaxElapsedTime:  20 * time.Second,
		MaxRetries:      10,
		RequestTimeout:  10 * time.Second,
	}
}

// ResolverImpl represents data required to operate resolving
type ResolverImpl struct {
	url        string
	httpClient *requests.HTTPClient
	retry      RetryOptions
}

// NewResolver creates new ip-detector resolver fetching the public IP from
// the given identity service URL.
func NewResolver(httpClient *requests.HTTPClient, url string, retry RetryOptions) *ResolverImpl {
	return &ResolverImpl{
		url:        url,
		httpClient: httpClient,
		retry:      retry,
	}
}

type ipResponse struct {
	IP string `json:"IP"`
}

// declared as var for override in test
var checkAddress = "8.8.8.8:53"

// GetOutboundIP returns current outbound IP for current system
func (r *ResolverImpl) GetOutboundIP() (net.IP, error) {
	conn, err := net.Dial("udp4", checkAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to determine outbound IP")
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP, nil
}

// GetOutboundIPAsString returns current outbound IP as string for current system
func (r *ResolverImpl) GetOutboundIPAsString() (string, error) {
	ip, err := r.GetOutboundIP()
	if err != nil {
		return "", err
	}
	return ip.String(), nil
}

// GetPublicIP returns current public IP, retrying transient failures with
// bounded exponential backoff and failing after the retries are exhausted.
func (r *ResolverImpl) GetPublicIP() (string, error) {
	var boff backoff.BackOff
	eback := backoff.NewExponentialBackOff()
	eback.MaxElapsedTime = r.retry.MaxElapsedTime
	eback.InitialInterval = r.retry.InitialInterval
	boff = backoff.WithMaxRetries(eback, r.retry.MaxRetries)

	var ipResponse ipResponse
	retry := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), r.retry.RequestTimeout)
		defer cancel()
		req, err := requests.NewGetRequestWithContext(ctx, r.url, "", nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", apiClient)
		req.Header.Set("Accept", "application/json")

		if err := r.httpClient.DoRequestAndParseResponse(req, &ipResponse); err != nil {
			log.Err(err).Msg("IP detection failed, will try again")
			return err
		}
		return nil
	}

	if err := backoff.Retry(retry, boff); err != nil {
		return "", err
	}

	log.Debug().Msg("IP detected: " + ipResponse.IP)
	return ipResponse.IP, nil
}
