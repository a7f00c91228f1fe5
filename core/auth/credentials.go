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

// Package auth guards the client local API: credential checks and short lived
// session tokens. The token signing key lives in memory only, so every client
// relaunch invalidates previously issued sessions.
package auth

import (
	"crypto/subtle"

	"github.com/pkg/errors"
)

// ErrBadCredentials indicates that the username/password pair was rejected
var ErrBadCredentials = errors.New("bad credentials")

// CredentialsChecker validates username and password pairs
type CredentialsChecker struct {
	username string
	password string
}

// NewCredentialsChecker creates a checker for the configured account
func NewCredentialsChecker(username, password string) *CredentialsChecker {
	return &CredentialsChecker{username: username, password: password}
}

// CheckCredentials compares the given credentials with the configured ones
func (cc *CredentialsChecker) CheckCredentials(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(cc.username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(cc.password), []byte(password)) == 1
	if !userOK || !passOK {
		return ErrBadCredentials
	}
	return nil
}
