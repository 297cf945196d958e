// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a #rrggbb or #rgb hex color and combines it with
// the given alpha, clamped to [0, 1], into RGBA components.
func ParseColor(hex string, alpha float32) (mgl32.Vec4, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return mgl32.Vec4{}, fmt.Errorf("config: invalid color %q: %w", hex, err)
	}
	c = c.Clamped()
	a := math32.Min(math32.Max(alpha, 0), 1)
	if math32.IsNaN(a) {
		a = 1
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), a}, nil
}
