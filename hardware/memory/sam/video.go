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

// the X and Y dividers for each value of the V field
var xdivs = [8]int{1, 3, 1, 2, 1, 1, 1, 1}
var ydivs = [8]int{12, 1, 3, 1, 2, 1, 1, 1}

// the video address counter. bits 0 to 3 count every byte. the carry into
// bit 4 is divided by the X divider. rowStart is where the counter returns to
// on horizontal sync until the Y divider expires
type video struct {
	counter  uint16
	rowStart uint16
	xcount   int
	ycount   int
}

// VideoReset is called on field sync. The video counter is loaded with the
// video base from the F field.
func (sam *SAM) VideoReset() {
	sam.video = video{
		counter:  sam.VideoBase(),
		rowStart: sam.VideoBase(),
	}
}

// VideoHSync is called at the end of every line.
func (sam *SAM) VideoHSync() {
	v := &sam.video
	v.ycount++
	if v.ycount >= ydivs[sam.VideoMode()] {
		v.ycount = 0
		v.rowStart = v.counter
	} else {
		v.counter = v.rowStart
	}
}

// VideoFetch fills the buffer with bytes from RAM, advancing the video
// counter. No time is charged to the clock. The VDG fetches in the gaps
// between CPU cycles.
func (sam *SAM) VideoFetch(buf []uint8) {
	v := &sam.video
	xdiv := xdivs[sam.VideoMode()]
	for i := range buf {
		buf[i] = sam.RAM[sam.ramOffset(int(v.counter))]

		low := (v.counter + 1) & 0x0f
		if low != 0 {
			v.counter = v.counter&^0x0f | low
			continue
		}

		v.xcount++
		if v.xcount >= xdiv {
			v.xcount = 0
			v.counter = (v.counter &^ 0x0f) + 0x10
		} else {
			v.counter &^= 0x0f
		}
	}
}

// VideoAddress returns the current value of the video counter.
func (sam *SAM) VideoAddress() uint16 {
	return sam.video.counter
}
