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

package television

// Renderer implementations work with the raw video data produced by the
// machine. The data for a line is the bytes fetched from RAM by the video
// hardware. Interpreting those bytes according to the VDG mode is the
// business of the renderer.
type Renderer interface {
	// NewFrame is called at the start of every frame
	NewFrame(frameNum int) error

	// NewLine is called for every active line. the data slice is only
	// valid for the duration of the call
	NewLine(line int, data []uint8) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. the Renderer should be considered unusable after EndRendering()
	// has been called
	EndRendering() error
}

// FrameTrigger implementations listen for NewFrame events. FrameTrigger is a
// subset of Renderer.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}

// AudioMixer implementations work with sound; most probably playing it.
type AudioMixer interface {
	SetAudio(audioData uint8) error

	// the AudioMixer should be considered unusable after EndMixing() has
	// been called
	EndMixing() error
}
