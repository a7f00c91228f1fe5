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

package daemon

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/veilnetwork/desktop/core/connection"
	"github.com/veilnetwork/desktop/localapi/utils"
	"github.com/veilnetwork/desktop/market"
	"github.com/veilnetwork/desktop/metadata"
)

type healthcheckData struct {
	Uptime    string `json:"uptime"`
	Version   string `json:"version"`
	BuildInfo string `json:"build_info"`
}

type api struct {
	daemon *Daemon
}

// NewRouter creates the daemon HTTP API router.
func NewRouter(daemon *Daemon) *httprouter.Router {
	a := &api{daemon: daemon}
	router := httprouter.New()
	router.GET("/healthcheck", a.healthcheck)
	router.GET("/connection", a.status)
	router.PUT("/connection", a.connect)
	router.DELETE("/connection", a.disconnect)
	router.GET("/ip", a.egressIP)
	router.PUT("/killswitch", a.killSwitch)
	router.POST("/drop", a.drop)
	return router
}

func (a *api) healthcheck(resp http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.WriteAsJSON(healthcheckData{
		Uptime:    time.Since(a.daemon.startedAt).String(),
		Version:   metadata.VersionAsString(),
		BuildInfo: metadata.BuildAsString(),
	}, resp)
}

func (a *api) status(resp http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.WriteAsJSON(statusToDTO(a.daemon.Status()), resp)
}

func (a *api) connect(resp http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	var cr ConnectRequest
	if err := json.NewDecoder(req.Body).Decode(&cr); err != nil {
		utils.SendError(resp, err, http.StatusBadRequest)
		return
	}

	proposal, err := a.selectProposal(cr)
	if err != nil {
		utils.SendError(resp, err, http.StatusUnprocessableEntity)
		return
	}

	switch err := a.daemon.Connect(proposal); err {
	case nil:
		resp.WriteHeader(http.StatusCreated)
		utils.WriteAsJSON(statusToDTO(a.daemon.Status()), resp)
	case connection.ErrAlreadyExists:
		utils.SendError(resp, err, http.StatusConflict)
	default:
		utils.SendError(resp, err, http.StatusInternalServerError)
	}
}

func (a *api) selectProposal(cr ConnectRequest) (market.ServerProposal, error) {
	switch cr.Mode {
	case ModeFastest:
		return a.daemon.proposals.Fastest()
	case ModeRandom:
		return a.daemon.proposals.Random()
	case ModeSpecific, "":
		category := market.Category(cr.Category)
		if category == "" {
			category = market.CategoryStandard
		}
		return a.daemon.proposals.Find(cr.Country, category)
	default:
		return market.ServerProposal{}, errors.Errorf("unknown selector mode: %q", cr.Mode)
	}
}

func (a *api) disconnect(resp http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	var err error
	if req.URL.Query().Get("action") == "cancel" {
		err = a.daemon.Cancel()
	} else {
		err = a.daemon.Disconnect()
	}
	switch err {
	case nil:
		resp.WriteHeader(http.StatusAccepted)
	case connection.ErrNoConnection:
		utils.SendError(resp, err, http.StatusConflict)
	default:
		utils.SendError(resp, err, http.StatusInternalServerError)
	}
}

func (a *api) egressIP(resp http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if a.daemon.TrafficBlocked() {
		utils.SendErrorMessage(resp, "traffic blocked by kill switch", http.StatusServiceUnavailable)
		return
	}
	utils.WriteAsJSON(IPDTO{IP: a.daemon.EgressIP()}, resp)
}

func (a *api) killSwitch(resp http.ResponseWriter, req *http.Request, _ httprouter.Params) {
	var ks KillSwitchRequest
	if err := json.NewDecoder(req.Body).Decode(&ks); err != nil {
		utils.SendError(resp, err, http.StatusBadRequest)
		return
	}
	if err := a.daemon.SetKillSwitch(ks.Enabled); err != nil {
		utils.SendError(resp, err, http.StatusInternalServerError)
		return
	}
	resp.WriteHeader(http.StatusAccepted)
}

func (a *api) drop(resp http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	switch err := a.daemon.Drop(); err {
	case nil:
		resp.WriteHeader(http.StatusAccepted)
	case connection.ErrNoConnection:
		utils.SendError(resp, err, http.StatusConflict)
	default:
		utils.SendError(resp, err, http.StatusInternalServerError)
	}
}

func statusToDTO(status connection.Status) StatusDTO {
	dto := StatusDTO{Status: string(status.State)}
	if status.SessionID != "" {
		dto.SessionID = status.SessionID
		dto.Country = status.Proposal.Country
		dto.Category = string(status.Proposal.Category)
		dto.EgressIP = status.Proposal.EgressIP
	}
	return dto
}
