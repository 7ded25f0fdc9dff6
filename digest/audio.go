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
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024

// the buffer is preceded by the previous digest value
const audioBufferStart = sha1.Size

// Audio implements the television.AudioMixer interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface. Samples that have not yet been
// flushed are not part of the hash.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
}

// SetAudio implements the television.AudioMixer interface.
func (dig *Audio) SetAudio(audioData uint8) error {
	dig.buffer[dig.bufferCt] = audioData
	dig.bufferCt++
	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}
	return nil
}

func (dig *Audio) flush() {
	// unused part of the buffer is zeroed so that a partial buffer produces
	// a consistent hash
	clear(dig.buffer[dig.bufferCt:])
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// EndMixing implements the television.AudioMixer interface. Any remaining
// samples are added to the hash.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return nil
}
