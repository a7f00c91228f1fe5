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

// Package connection implements the client side connection state machine:
// NotConnected -> Connecting -> Connected, with cancel during Connecting and
// disconnect from Connected. Every transition is published on the event bus.
package connection

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/eventbus"
	"github.com/veilnetwork/desktop/market"
)

var (
	// ErrNoConnection error indicates that action applied to manager expects an active connection
	ErrNoConnection = errors.New("no connection exists")
	// ErrAlreadyExists error indicates that action applied to manager expects no active connection
	ErrAlreadyExists = errors.New("connection already exists")
)

// TimeGetter function returns current time
type TimeGetter func() time.Time

type connectionManager struct {
	publisher eventbus.Publisher
	dialDelay time.Duration
	timeGet   TimeGetter

	mu         sync.Mutex
	status     Status
	generation int
	cancelDial context.CancelFunc
}

// NewManager creates connection manager with given dial delay. The delay keeps
// the Connecting state observable and cancellable.
func NewManager(publisher eventbus.Publisher, dialDelay time.Duration) *connectionManager {
	return &connectionManager{
		publisher: publisher,
		dialDelay: dialDelay,
		timeGet:   time.Now,
		status:    Status{State: NotConnected},
	}
}

// Connect starts a new connection to the given proposal.
func (m *connectionManager) Connect(proposal market.ServerProposal) error {
	m.mu.Lock()
	if m.status.State != NotConnected {
		m.mu.Unlock()
		return ErrAlreadyExists
	}

	sessionID, err := uuid.NewV4()
	if err != nil {
		m.mu.Unlock()
		return errors.Wrap(err, "failed to generate session id")
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelDial = cancel
	m.generation++
	generation := m.generation

	m.setStatusLocked(Status{
		State:     Connecting,
		SessionID: sessionID.String(),
		Proposal:  proposal,
	})
	m.mu.Unlock()

	go m.dial(ctx, generation)
	return nil
}

// dial simulates connection establishment, finishing after the dial delay
// unless cancelled first.
func (m *connectionManager) dial(ctx context.Context, generation int) {
	timer := time.NewTimer(m.dialDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Debug().Msg("Connection dial cancelled")
	case <-timer.C:
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.generation != generation || m.status.State != Connecting {
			return
		}
		status := m.status
		status.State = Connected
		status.StartedAt = m.timeGet()
		m.setStatusLocked(status)
		m.publisher.Publish(AppTopicConnectionSession, AppEventConnectionSession{
			Status:      SessionCreatedStatus,
			SessionInfo: status,
		})
	}
}

// Cancel aborts the connection attempt in progress.
func (m *connectionManager) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status.State != Connecting {
		return ErrNoConnection
	}

	m.cancelDial()
	m.generation++

	canceled := m.status
	canceled.State = Canceled
	m.setStatusLocked(canceled)
	m.setStatusLocked(Status{State: NotConnected})
	return nil
}

// Disconnect closes the established connection.
func (m *connectionManager) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status.State != Connected {
		return ErrNoConnection
	}

	ended := m.status

	disconnecting := m.status
	disconnecting.State = Disconnecting
	m.setStatusLocked(disconnecting)
	m.setStatusLocked(Status{State: NotConnected})

	m.publisher.Publish(AppTopicConnectionSession, AppEventConnectionSession{
		Status:      SessionEndedStatus,
		SessionInfo: ended,
	})
	return nil
}

// Status returns a copy of the current connection status.
func (m *connectionManager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *connectionManager) setStatusLocked(status Status) {
	m.status = status
	m.publisher.Publish(AppTopicConnectionState, AppEventConnectionState{
		State:       status.State,
		SessionInfo: status,
	})
}
