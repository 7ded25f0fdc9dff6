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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherdragon/hardware/clocks"
)

// Video implements the television.Renderer interface. The hash is updated
// at the start of every frame from the line data of the previous frame.
type Video struct {
	digest   [sha1.Size]byte
	frame    []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		// room for the previous digest and the maximum number of lines
		frame: make([]byte, sha1.Size+clocks.PALLines*clocks.BytesPerLine),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
}

// NewFrame implements the television.Renderer interface.
func (dig *Video) NewFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	copy(dig.frame, dig.digest[:])
	dig.digest = sha1.Sum(dig.frame)
	clear(dig.frame[sha1.Size:])
	dig.frameNum = frameNum
	return nil
}

// NewLine implements the television.Renderer interface.
func (dig *Video) NewLine(line int, data []uint8) error {
	i := sha1.Size + line*clocks.BytesPerLine
	if line < 0 || i >= len(dig.frame) {
		return fmt.Errorf("digest: line out of range (%d)", line)
	}
	copy(dig.frame[i:i+clocks.BytesPerLine], data)
	return nil
}

// EndRendering implements the television.Renderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
