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
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// JWTToken is a jwt session token with its expiration time
type JWTToken struct {
	Token          string
	ExpirationTime time.Time
}

const expiresIn = 48 * time.Hour

type jwtClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuthenticator issues and validates session tokens
type JWTAuthenticator struct {
	encryptionKey []byte
}

// NewJWTAuthenticator creates an authenticator with a fresh in-memory signing
// key. Tokens from previous application runs do not validate.
func NewJWTAuthenticator() (*JWTAuthenticator, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Wrap(err, "failed to generate jwt encryption key")
	}
	return &JWTAuthenticator{encryptionKey: key}, nil
}

// CreateToken issues a token for the given username
func (a *JWTAuthenticator) CreateToken(username string) (JWTToken, error) {
	expirationTime := time.Now().Add(expiresIn)
	claims := &jwtClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.encryptionKey)
	if err != nil {
		return JWTToken{}, err
	}

	return JWTToken{Token: tokenString, ExpirationTime: expirationTime}, nil
}

// ValidateToken checks the token signature and expiration
func (a *JWTAuthenticator) ValidateToken(token string) (bool, error) {
	claims := &jwtClaims{}

	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return a.encryptionKey, nil
	})
	if err != nil {
		return false, err
	}
	if tkn == nil || !tkn.Valid {
		return false, errors.New("invalid jwt token")
	}

	return true, nil
}
