// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parcoords

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// Tealrose is a diverging palette from teal through cream to rose.
var Tealrose = palette.RGBGradient{
	Colors: []color.RGBA{
		{0, 147, 146, 255},
		{114, 170, 161, 255},
		{177, 199, 179, 255},
		{241, 234, 200, 255},
		{229, 185, 173, 255},
		{217, 137, 148, 255},
		{208, 88, 126, 255},
	},
}

// A ColorScale maps the normalized line color value to colors.
type ColorScale []ColorStop

// A ColorStop is a position in [0, 1] and the color at that position.
type ColorStop struct {
	At    float64
	Color color.Color
}

// GradientScale returns the color scale with the colors and stops of
// g. If g has no explicit stops, its colors are evenly spaced.
func GradientScale(g palette.RGBGradient) ColorScale {
	cs := make(ColorScale, len(g.Colors))
	for i, c := range g.Colors {
		at := 0.0
		if g.Stops != nil {
			at = g.Stops[i]
		} else if len(g.Colors) > 1 {
			at = float64(i) / float64(len(g.Colors)-1)
		}
		cs[i] = ColorStop{at, c}
	}
	return cs
}

func (cs ColorScale) MarshalJSON() ([]byte, error) {
	stops := make([][2]interface{}, len(cs))
	for i, s := range cs {
		stops[i] = [2]interface{}{s.At, cssColor(s.Color)}
	}
	return json.Marshal(stops)
}

// cssColor formats c as a CSS rgb() color, ignoring alpha.
func cssColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d, %d, %d)", r>>8, g>>8, b>>8)
}
