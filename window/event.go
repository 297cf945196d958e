// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"fmt"
	"image"
)

// EventTypes are the kinds of [Event].
type EventTypes int32

const (
	// Quit is sent when the user asks to close the window.
	Quit EventTypes = iota

	// Resize is sent when the framebuffer size changes.
	Resize

	// KeyDown is sent when a key is pressed.
	KeyDown
)

func (et EventTypes) String() string {
	switch et {
	case Quit:
		return "Quit"
	case Resize:
		return "Resize"
	case KeyDown:
		return "KeyDown"
	}
	return fmt.Sprintf("EventTypes(%d)", int32(et))
}

// KeyEscape is the [Event.Key] name of the escape key.
const KeyEscape = "Escape"

// Event is a window event.
type Event struct {
	Type EventTypes

	// Size is the new framebuffer size, for Resize events.
	Size image.Point

	// Key is the key name, for KeyDown events.
	Key string
}

func (ev Event) String() string {
	switch ev.Type {
	case Resize:
		return fmt.Sprintf("Resize(%v)", ev.Size)
	case KeyDown:
		return fmt.Sprintf("KeyDown(%s)", ev.Key)
	}
	return ev.Type.String()
}
