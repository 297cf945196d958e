// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"unsafe"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ReadPixels reads the RGBA contents of the current framebuffer,
// of the given size, into an image with the usual top-down row order.
func ReadPixels(gl GL, size image.Point) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	gl.ReadPixels(0, 0, int32(size.X), int32(size.Y), RGBA, UnsignedByte, unsafe.Pointer(&img.Pix[0]))
	// the driver returns rows bottom-up
	return transform.FlipV(img)
}

// SavePNG saves the image as a PNG file.
func SavePNG(path string, img image.Image) error {
	return imgio.Save(path, img, imgio.PNGEncoder())
}
