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

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	left = Monitor{
		Bounds:   Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
		WorkArea: Rect{X: 0, Y: 0, Width: 1920, Height: 1040},
		Primary:  true,
	}
	right = Monitor{
		Bounds:   Rect{X: 1920, Y: 0, Width: 2560, Height: 1440},
		WorkArea: Rect{X: 1920, Y: 0, Width: 2560, Height: 1400},
	}
	dual = []Monitor{left, right}
)

func TestIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 50, Y: 50, Width: 100, Height: 100}
	assert.Equal(t, Rect{X: 50, Y: 50, Width: 50, Height: 50}, a.Intersect(b))

	c := Rect{X: 200, Y: 200, Width: 10, Height: 10}
	assert.True(t, a.Intersect(c).Empty())
	assert.Equal(t, 0, a.Intersect(c).Area())
}

func TestMonitorForPicksBiggestOverlap(t *testing.T) {
	// mostly on the right monitor
	rect := Rect{X: 1800, Y: 100, Width: 400, Height: 300}
	monitor, ok := MonitorFor(rect, dual)
	assert.True(t, ok)
	assert.Equal(t, right, monitor)

	// fully on the left one
	rect = Rect{X: 100, Y: 100, Width: 400, Height: 300}
	monitor, ok = MonitorFor(rect, dual)
	assert.True(t, ok)
	assert.Equal(t, left, monitor)
}

func TestMonitorForFallsBackToPrimary(t *testing.T) {
	offscreen := Rect{X: -5000, Y: -5000, Width: 300, Height: 200}
	monitor, ok := MonitorFor(offscreen, dual)
	assert.True(t, ok)
	assert.Equal(t, left, monitor)
}

func TestMonitorForWithoutPrimaryUsesFirst(t *testing.T) {
	monitors := []Monitor{right}
	monitor, ok := MonitorFor(Rect{X: -5000, Y: 0, Width: 10, Height: 10}, monitors)
	assert.True(t, ok)
	assert.Equal(t, right, monitor)
}

func TestMonitorForWithoutMonitors(t *testing.T) {
	_, ok := MonitorFor(Rect{}, nil)
	assert.False(t, ok)
}

func TestCenterOnUsesWorkArea(t *testing.T) {
	rect := CenterOn(left, 400, 600)
	assert.Equal(t, Rect{X: 760, Y: 220, Width: 400, Height: 600}, rect)
}

func TestClampToKeepsWindowInsideWorkArea(t *testing.T) {
	// hanging off the bottom right corner
	rect := ClampTo(left, Rect{X: 1800, Y: 1000, Width: 400, Height: 300})
	assert.Equal(t, Rect{X: 1520, Y: 740, Width: 400, Height: 300}, rect)

	// bigger than the work area shrinks
	rect = ClampTo(left, Rect{X: -100, Y: -100, Width: 4000, Height: 4000})
	assert.Equal(t, left.WorkArea, rect)
}

func TestRestorePlacementKeepsGoodPlacement(t *testing.T) {
	saved := Rect{X: 2000, Y: 200, Width: 400, Height: 600}
	restored, ok := RestorePlacement(saved, dual)
	assert.True(t, ok)
	assert.Equal(t, saved, restored)
}

func TestRestorePlacementRecentersOffscreenWindow(t *testing.T) {
	saved := Rect{X: -9000, Y: -9000, Width: 400, Height: 600}
	restored, ok := RestorePlacement(saved, dual)
	assert.True(t, ok)
	assert.Equal(t, CenterOn(left, 400, 600), restored)
}

func TestRestorePlacementRecentersDegenerateWindow(t *testing.T) {
	restored, ok := RestorePlacement(Rect{}, dual)
	assert.True(t, ok)
	assert.Equal(t, CenterOn(left, defaultWidth, defaultHeight), restored)
}

func TestRestorePlacementBarelyVisibleWindowIsRecentered(t *testing.T) {
	// 5x5 pixels visible in the corner is not reachable
	saved := Rect{X: -395, Y: -595, Width: 400, Height: 600}
	restored, ok := RestorePlacement(saved, dual)
	assert.True(t, ok)
	assert.Equal(t, CenterOn(left, 400, 600), restored)
}

func TestRestorePlacementWithoutMonitors(t *testing.T) {
	_, ok := RestorePlacement(Rect{X: 0, Y: 0, Width: 100, Height: 100}, nil)
	assert.False(t, ok)
}
