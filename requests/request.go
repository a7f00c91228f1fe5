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

package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const userAgentName = "veil-desktop/goclient"

// NewGetRequest generates http Get request
func NewGetRequest(apiURI, path string, params url.Values) (*http.Request, error) {
	pathWithQuery := fmt.Sprintf("%v?%v", path, params.Encode())
	return newRequest(http.MethodGet, apiURI, pathWithQuery, nil)
}

// NewGetRequestWithContext generates http Get request with context
func NewGetRequestWithContext(ctx context.Context, apiURI, path string, params url.Values) (*http.Request, error) {
	req, err := NewGetRequest(apiURI, path, params)
	if err != nil {
		return nil, err
	}
	return req.WithContext(ctx), nil
}

// NewPostRequest generates http Post request
func NewPostRequest(apiURI, path string, requestBody interface{}) (*http.Request, error) {
	bodyBytes, err := encodeToJSON(requestBody)
	if err != nil {
		return nil, err
	}
	return newRequest(http.MethodPost, apiURI, path, bodyBytes)
}

// NewPutRequest generates http Put request
func NewPutRequest(apiURI, path string, requestBody interface{}) (*http.Request, error) {
	bodyBytes, err := encodeToJSON(requestBody)
	if err != nil {
		return nil, err
	}
	return newRequest(http.MethodPut, apiURI, path, bodyBytes)
}

// NewDeleteRequest generates http Delete request
func NewDeleteRequest(apiURI, path string, params url.Values) (*http.Request, error) {
	pathWithQuery := fmt.Sprintf("%v?%v", path, params.Encode())
	return newRequest(http.MethodDelete, apiURI, pathWithQuery, nil)
}

func newRequest(method, apiURI, path string, body []byte) (*http.Request, error) {
	fullURL := fmt.Sprintf("%v/%v", apiURI, path)
	req, err := http.NewRequest(method, fullURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", userAgentName)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func encodeToJSON(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}
