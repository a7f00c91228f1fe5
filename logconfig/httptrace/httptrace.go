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

// Package httptrace dumps HTTP requests and responses when payload logging is on.
package httptrace

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/logconfig"
)

// TraceRequestResponse dumps request and response to the debug log
func TraceRequestResponse(req *http.Request, response *http.Response) {
	if !logconfig.CurrentLogOptions.LogHTTP {
		return
	}
	dumpRequest, _ := httputil.DumpRequest(req, true)
	log.Debug().Msgf("Request: %v", string(dumpRequest))
	dumpResponse, _ := httputil.DumpResponse(response, true)
	log.Debug().Msgf("Response: %v", string(dumpResponse))
}
