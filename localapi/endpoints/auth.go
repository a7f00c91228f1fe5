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

package endpoints

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/julienschmidt/httprouter"

	"github.com/veilnetwork/desktop/core/auth"
	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/localapi/contract"
	"github.com/veilnetwork/desktop/localapi/utils"
)

// AppTopicUIAuthentication is the UI session authentication topic
const AppTopicUIAuthentication = "UI authentication change"

// AppEventUIAuthentication is emitted when the UI session logs in or out
type AppEventUIAuthentication struct {
	Authenticated bool
}

type credentialsChecker interface {
	CheckCredentials(username, password string) error
}

type tokenIssuer interface {
	CreateToken(username string) (auth.JWTToken, error)
}

type tokenValidator interface {
	ValidateToken(token string) (bool, error)
}

// AuthenticationAPI handles the login of the UI session
type AuthenticationAPI struct {
	credentials credentialsChecker
	issuer      tokenIssuer
	publisher   eventbus.Publisher
}

// NewAuthenticationAPI creates the authentication endpoint
func NewAuthenticationAPI(credentials credentialsChecker, issuer tokenIssuer, publisher eventbus.Publisher) *AuthenticationAPI {
	return &AuthenticationAPI{credentials: credentials, issuer: issuer, publisher: publisher}
}

// Login checks user credentials and issues a session token
func (api *AuthenticationAPI) Login(resp http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	var request contract.LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		utils.SendError(resp, err, http.StatusBadRequest)
		return
	}

	err := validation.ValidateStruct(&request,
		validation.Field(&request.Username, validation.Required),
		validation.Field(&request.Password, validation.Required),
	)
	if err != nil {
		utils.SendError(resp, err, http.StatusBadRequest)
		return
	}

	if err := api.credentials.CheckCredentials(request.Username, request.Password); err != nil {
		utils.SendError(resp, err, http.StatusUnauthorized)
		return
	}

	token, err := api.issuer.CreateToken(request.Username)
	if err != nil {
		utils.SendError(resp, err, http.StatusInternalServerError)
		return
	}

	api.publisher.Publish(AppTopicUIAuthentication, AppEventUIAuthentication{Authenticated: true})
	utils.WriteAsJSON(contract.TokenDTO{
		Token:     token.Token,
		ExpiresAt: token.ExpirationTime.Format(time.RFC3339),
	}, resp)
}

// Logout ends the UI session. Tokens are in-memory only, so there is nothing
// to revoke server side.
func (api *AuthenticationAPI) Logout(resp http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	api.publisher.Publish(AppTopicUIAuthentication, AppEventUIAuthentication{Authenticated: false})
	resp.WriteHeader(http.StatusAccepted)
}

// TokenGuard protects routes which require an authenticated UI session
type TokenGuard struct {
	validator tokenValidator
}

// NewTokenGuard creates a guard validating bearer tokens
func NewTokenGuard(validator tokenValidator) *TokenGuard {
	return &TokenGuard{validator: validator}
}

// Protect wraps the handle with a bearer token check
func (guard *TokenGuard) Protect(handle httprouter.Handle) httprouter.Handle {
	return func(resp http.ResponseWriter, req *http.Request, params httprouter.Params) {
		token := strings.TrimPrefix(req.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			utils.SendErrorMessage(resp, "authentication required", http.StatusUnauthorized)
			return
		}
		valid, err := guard.validator.ValidateToken(token)
		if err != nil || !valid {
			utils.SendErrorMessage(resp, "invalid session token", http.StatusUnauthorized)
			return
		}
		handle(resp, req, params)
	}
}
