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

package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/rs/zerolog/log"
)

// IconRegistry holds one pre-rendered PNG tray icon per status. Construct it
// once and hand it to whoever presents the tray, there are no package
// globals involved.
type IconRegistry struct {
	icons map[Status][]byte
}

// Palette defines the dot color per status.
type Palette struct {
	Size   int
	Colors map[Status]color.RGBA
}

// DefaultPalette returns the stock tray colors.
func DefaultPalette() Palette {
	return Palette{
		Size: 22,
		Colors: map[Status]color.RGBA{
			StatusLoggedOut:    {117, 117, 117, 255},
			StatusDisconnected: {158, 158, 158, 255},
			StatusConnecting:   {255, 179, 0, 255},
			StatusConnected:    {56, 142, 60, 255},
			StatusError:        {211, 47, 47, 255},
		},
	}
}

// NewIconRegistry renders the icon set for the given palette.
func NewIconRegistry(palette Palette) *IconRegistry {
	icons := make(map[Status][]byte, len(palette.Colors))
	for status, fill := range palette.Colors {
		icons[status] = renderDot(palette.Size, fill)
	}
	return &IconRegistry{icons: icons}
}

// Icon returns the PNG bytes for the given status. Unknown statuses get the
// error icon rather than an empty tray slot.
func (r *IconRegistry) Icon(status Status) []byte {
	if icon, ok := r.icons[status]; ok {
		return icon
	}
	return r.icons[StatusError]
}

// renderDot draws a filled circle with a slightly darker rim.
func renderDot(size int, fill color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := center - 1
	rim := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			distance := dx*dx + dy*dy
			switch {
			case distance <= (radius-1)*(radius-1):
				img.Set(x, y, fill)
			case distance <= radius*radius:
				img.Set(x, y, rim)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Warn().Err(err).Msg("Failed to encode tray icon")
		return nil
	}
	return buf.Bytes()
}
