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

package apprunner

import (
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/veilnetwork/desktop/config"
)

// ProcessController runs the client as a real child process, the closest
// setup to what end users run.
type ProcessController struct {
	binary     string
	apiAddress string
	dataDir    string

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan error
}

// NewProcessController creates a controller for the configured client binary.
func NewProcessController() *ProcessController {
	return &ProcessController{
		binary:     config.Current.GetString(config.HarnessClientBinary),
		apiAddress: config.Current.GetString(config.HarnessClientAPIAddress),
		dataDir:    config.Current.GetString(config.DesktopDataDir),
	}
}

// Launch spawns the client process and waits for its local API.
func (pc *ProcessController) Launch(freshStart bool) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.cmd != nil {
		return ErrAlreadyRunning
	}

	args := []string{
		"client",
		"--api.address", pc.apiAddress,
		"--data-dir", pc.dataDir,
		"--daemon.address", config.Current.GetString(config.HarnessDaemonAPIAddress),
	}
	if freshStart {
		args = append(args, "--fresh")
	}

	cmd := exec.Command(pc.binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to launch client binary %q", pc.binary)
	}
	log.Info().Msgf("Launched client process, pid: %d", cmd.Process.Pid)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	if err := waitForAPI(pc.apiAddress); err != nil {
		cmd.Process.Kill()
		<-done
		return err
	}
	pc.cmd = cmd
	pc.done = done
	return nil
}

// Close asks the client to exit and waits for it.
func (pc *ProcessController) Close() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.cmd == nil {
		return ErrNotRunning
	}
	if err := pc.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return errors.Wrap(err, "failed to signal client process")
	}
	err := pc.waitExitLocked()
	// a clean SIGTERM exit is not a failure
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == -1 {
		return nil
	}
	return err
}

// Kill terminates the client with SIGKILL. No shutdown code of the client
// gets to run.
func (pc *ProcessController) Kill() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.cmd == nil {
		return ErrNotRunning
	}
	log.Info().Msgf("Killing client process, pid: %d", pc.cmd.Process.Pid)
	if err := pc.cmd.Process.Kill(); err != nil {
		return errors.Wrap(err, "failed to kill client process")
	}
	pc.waitExitLocked()
	settleAfterKill()
	return nil
}

// Dispose kills the client if it is still around.
func (pc *ProcessController) Dispose() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.cmd == nil {
		return nil
	}
	pc.cmd.Process.Kill()
	pc.waitExitLocked()
	return nil
}

// APIAddress returns the local API address of the client.
func (pc *ProcessController) APIAddress() string {
	return pc.apiAddress
}

func (pc *ProcessController) waitExitLocked() error {
	var err error
	select {
	case err = <-pc.done:
	case <-time.After(10 * time.Second):
		err = errors.New("client process did not exit in time")
	}
	pc.cmd = nil
	pc.done = nil
	return err
}
