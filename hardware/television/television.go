// This file is part of GopherDragon.
//
// GopherDragon is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDragon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDragon.  If not, see <https://www.gnu.org/licenses/>.

// Package television is the receiving end of the video and audio signals
// produced by the machine. It keeps track of the frame and line being
// produced and forwards the signals to any attached renderers and mixers.
package television

import (
	"fmt"

	"github.com/jetsetilly/gopherdragon/logger"
)

// Coords is the position of the television at a moment in time.
type Coords struct {
	Frame int
	Line  int
}

func (c Coords) String() string {
	return fmt.Sprintf("Frame: %d  Line: %03d", c.Frame, c.Line)
}

// Television forwards video and audio to the attached consumers.
type Television struct {
	coords Coords

	renderers []Renderer
	triggers  []FrameTrigger
	mixers    []AudioMixer
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision() *Television {
	return &Television{}
}

func (tv *Television) String() string {
	return tv.coords.String()
}

// AddRenderer adds a renderer to the list of renderers. A renderer does not
// also need to be added as a frame trigger.
func (tv *Television) AddRenderer(r Renderer) {
	tv.renderers = append(tv.renderers, r)
}

// AddFrameTrigger adds a frame trigger to the list of triggers.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	tv.triggers = append(tv.triggers, f)
}

// AddAudioMixer adds an audio mixer to the list of mixers.
func (tv *Television) AddAudioMixer(m AudioMixer) {
	tv.mixers = append(tv.mixers, m)
}

// GetCoords returns the current position of the television.
func (tv *Television) GetCoords() Coords {
	return tv.coords
}

// SetCoords is used when the machine is restored from a snapshot.
func (tv *Television) SetCoords(c Coords) {
	tv.coords = c
}

// NewFrame is called by the machine on field sync.
func (tv *Television) NewFrame() {
	tv.coords.Frame++
	tv.coords.Line = 0
	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.coords.Frame); err != nil {
			logger.Log(logger.Allow, "television", err)
		}
	}
	for _, f := range tv.triggers {
		if err := f.NewFrame(tv.coords.Frame); err != nil {
			logger.Log(logger.Allow, "television", err)
		}
	}
}

// Line is called by the machine for every line. The data argument is nil
// for lines outside of the active area.
func (tv *Television) Line(data []uint8) {
	if data != nil {
		for _, r := range tv.renderers {
			if err := r.NewLine(tv.coords.Line, data); err != nil {
				logger.Log(logger.Allow, "television", err)
			}
		}
	}
	tv.coords.Line++
}

// SetAudio forwards an audio sample to the attached mixers.
func (tv *Television) SetAudio(v uint8) {
	for _, m := range tv.mixers {
		if err := m.SetAudio(v); err != nil {
			logger.Log(logger.Allow, "television", err)
		}
	}
}

// End signals to all renderers and mixers that no more data is coming. The
// first error encountered is returned.
func (tv *Television) End() error {
	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	for _, m := range tv.mixers {
		if e := m.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
