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

// Package window holds the monitor-aware placement math of the client
// window. Everything here is pure: the desktop environment supplies monitor
// geometry, this package only decides where the window should go.
package window

// Rect is an axis-aligned rectangle in desktop coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the overlapping region of two rectangles. The result is
// empty when they do not touch.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Area returns the covered area, zero for empty rectangles.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Monitor is one display of the desktop.
type Monitor struct {
	// Bounds is the full monitor rectangle.
	Bounds Rect
	// WorkArea is Bounds minus taskbars and docks. Windows are placed here.
	WorkArea Rect
	// Primary marks the monitor windows fall back to.
	Primary bool
}

// MonitorFor picks the monitor showing the biggest part of the rectangle.
// With no overlap anywhere it falls back to the primary monitor, or the
// first one when none is marked primary.
func MonitorFor(rect Rect, monitors []Monitor) (Monitor, bool) {
	if len(monitors) == 0 {
		return Monitor{}, false
	}

	best := -1
	bestArea := 0
	for i, monitor := range monitors {
		if area := rect.Intersect(monitor.Bounds).Area(); area > bestArea {
			best = i
			bestArea = area
		}
	}
	if best >= 0 {
		return monitors[best], true
	}

	for _, monitor := range monitors {
		if monitor.Primary {
			return monitor, true
		}
	}
	return monitors[0], true
}

// CenterOn centers a window of the given size in the monitor work area.
func CenterOn(monitor Monitor, width, height int) Rect {
	work := monitor.WorkArea
	return Rect{
		X:      work.X + (work.Width-width)/2,
		Y:      work.Y + (work.Height-height)/2,
		Width:  width,
		Height: height,
	}
}

// ClampTo moves (and if needed shrinks) a rectangle so it fits the monitor
// work area.
func ClampTo(monitor Monitor, rect Rect) Rect {
	work := monitor.WorkArea
	if rect.Width > work.Width {
		rect.Width = work.Width
	}
	if rect.Height > work.Height {
		rect.Height = work.Height
	}
	if rect.X < work.X {
		rect.X = work.X
	}
	if rect.Y < work.Y {
		rect.Y = work.Y
	}
	if rect.Right() > work.Right() {
		rect.X = work.Right() - rect.Width
	}
	if rect.Bottom() > work.Bottom() {
		rect.Y = work.Bottom() - rect.Height
	}
	return rect
}

// minVisibleArea is the smallest on-screen part of a restored window that
// still counts as reachable by the user.
const minVisibleArea = 100

// defaultWidth and defaultHeight size the window when the saved placement is
// unusable.
const (
	defaultWidth  = 360
	defaultHeight = 540
)

// RestorePlacement turns a saved window rectangle into a usable one for the
// current monitor layout. Degenerate or off-screen placements are recentered
// on the best matching monitor.
func RestorePlacement(saved Rect, monitors []Monitor) (Rect, bool) {
	monitor, ok := MonitorFor(saved, monitors)
	if !ok {
		return Rect{}, false
	}

	if saved.Empty() {
		return CenterOn(monitor, defaultWidth, defaultHeight), true
	}

	visible := 0
	for _, m := range monitors {
		visible += saved.Intersect(m.WorkArea).Area()
	}
	if visible < minVisibleArea {
		return CenterOn(monitor, saved.Width, saved.Height), true
	}

	return ClampTo(monitor, saved), true
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
