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

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCredentials(t *testing.T) {
	checker := NewCredentialsChecker("veil", "secret")

	assert.NoError(t, checker.CheckCredentials("veil", "secret"))
	assert.Equal(t, ErrBadCredentials, checker.CheckCredentials("veil", "wrong"))
	assert.Equal(t, ErrBadCredentials, checker.CheckCredentials("other", "secret"))
}

func TestJWT_IssueAndValidate(t *testing.T) {
	authenticator, err := NewJWTAuthenticator()
	require.NoError(t, err)

	token, err := authenticator.CreateToken("veil")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	valid, err := authenticator.ValidateToken(token.Token)
	assert.NoError(t, err)
	assert.True(t, valid)
}

func TestJWT_RejectsTokenOfAnotherRun(t *testing.T) {
	first, err := NewJWTAuthenticator()
	require.NoError(t, err)
	second, err := NewJWTAuthenticator()
	require.NoError(t, err)

	token, err := first.CreateToken("veil")
	require.NoError(t, err)

	valid, _ := second.ValidateToken(token.Token)
	assert.False(t, valid)
}
