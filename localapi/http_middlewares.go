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

package localapi

import "net/http"

type cacheControl struct {
	writer http.ResponseWriter
}

func (cc cacheControl) Header() http.Header {
	return cc.writer.Header()
}

func (cc cacheControl) Write(data []byte) (int, error) {
	return cc.writer.Write(data)
}

func (cc cacheControl) WriteHeader(statusCode int) {
	cc.writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	cc.writer.WriteHeader(statusCode)
}

// DisableCaching marks all responses as non-cacheable
func DisableCaching(original http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		original.ServeHTTP(cacheControl{writer}, request)
	})
}
