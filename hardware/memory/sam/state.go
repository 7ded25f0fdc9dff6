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

package sam

// State is the SAM state that is not derived from the SAM register. The type
// has a fixed size and can be serialised with encoding/binary.
type State struct {
	Register      uint16
	ROMBank       uint8
	VideoCounter  uint16
	VideoRowStart uint16
	VideoX        uint8
	VideoY        uint8
}

// State returns a copy of the SAM state.
func (sam *SAM) State() State {
	return State{
		Register:      sam.reg,
		ROMBank:       uint8(sam.romBank),
		VideoCounter:  sam.video.counter,
		VideoRowStart: sam.video.rowStart,
		VideoX:        uint8(sam.video.xcount),
		VideoY:        uint8(sam.video.ycount),
	}
}

// SetState replaces the SAM state. Derived state is recomputed.
func (sam *SAM) SetState(s State) {
	sam.reg = s.Register
	sam.romBank = int(s.ROMBank & 1)
	sam.video = video{
		counter:  s.VideoCounter,
		rowStart: s.VideoRowStart,
		xcount:   int(s.VideoX),
		ycount:   int(s.VideoY),
	}
	sam.update()
}
