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

// Package boltdb persists client state which must survive a relaunch.
package boltdb

import (
	"path/filepath"

	"github.com/asdine/storm/v3"
	"github.com/pkg/errors"
)

// ErrNotFound indicates that no value is stored under the requested key
var ErrNotFound = errors.New("value not found")

// Bolt is a BoltDB backed storage
type Bolt struct {
	db *storm.DB
}

// NewStorage creates a new BoltDB storage in the given directory
func NewStorage(directory string) (*Bolt, error) {
	return openDB(filepath.Join(directory, "desktop.db"))
}

func openDB(name string) (*Bolt, error) {
	db, err := storm.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage")
	}
	return &Bolt{db}, nil
}

// SetValue stores the value under the key in the given bucket. Every write is
// committed before returning, so values persist even across a hard kill.
func (b *Bolt) SetValue(bucket string, key string, value interface{}) error {
	return b.db.Set(bucket, key, value)
}

// GetValue loads the value stored under the key into `to`
func (b *Bolt) GetValue(bucket string, key string, to interface{}) error {
	err := b.db.Get(bucket, key, to)
	if err == storm.ErrNotFound {
		return ErrNotFound
	}
	return err
}

// Close closes the database
func (b *Bolt) Close() error {
	return b.db.Close()
}
