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

package ip

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/veilnetwork/desktop/requests"
)

func fastRetryOptions() RetryOptions {
	return RetryOptions{
		InitialInterval: time.Millisecond,
		MaxElapsedTime:  time.Second,
		MaxRetries:      3,
		RequestTimeout:  time.Second,
	}
}

func TestGetPublicIP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"IP": "203.0.113.7"}`))
	}))
	defer server.Close()

	resolver := NewResolver(requests.NewHTTPClient(time.Second), server.URL, fastRetryOptions())

	ip, err := resolver.GetPublicIP()
	assert.NoError(t, err)
	assert.Equal(t, "203.0.113.7", ip)
}

func TestGetPublicIP_RetriesTransientFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"IP": "198.51.100.11"}`))
	}))
	defer server.Close()

	resolver := NewResolver(requests.NewHTTPClient(time.Second), server.URL, fastRetryOptions())

	ip, err := resolver.GetPublicIP()
	assert.NoError(t, err)
	assert.Equal(t, "198.51.100.11", ip)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestGetPublicIP_FailsAfterRetriesExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resolver := NewResolver(requests.NewHTTPClient(time.Second), server.URL, fastRetryOptions())

	_, err := resolver.GetPublicIP()
	assert.Error(t, err)
}

func TestFakeResolver(t *testing.T) {
	resolver := NewFakeResolver("10.0.0.1")

	ip, err := resolver.GetPublicIP()
	assert.NoError(t, err)
	assert.Equal(t, "10.0.0.1", ip)
}
