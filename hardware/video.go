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

package hardware

import (
	"github.com/jetsetilly/gopherdragon/hardware/clocks"
	"github.com/jetsetilly/gopherdragon/hardware/future"
)

// video timing. the VDG itself is not emulated. the machine generates the
// sync signals at the correct times and pulls the bytes the VDG would fetch
// through the SAM
type video struct {
	// current line and the number of lines in a field
	line  int
	lines int

	lineEvent  future.Event
	hsyncEvent future.Event

	buf [clocks.BytesPerLine]uint8
}

func (m *Machine) initVideo() {
	m.video.lines = clocks.NTSCLines
	if m.Config.PAL {
		m.video.lines = clocks.PALLines
	}
	m.video.lineEvent = future.Event{Label: "video line", Payload: m.videoLine}
	m.video.hsyncEvent = future.Event{Label: "hsync end", Payload: m.hsyncEnd}
}

func (m *Machine) resetVideo() {
	m.video.line = 0
	m.Sched.Machine.Cancel(&m.video.hsyncEvent)
	m.Sched.Machine.ScheduleIn(&m.video.lineEvent, clocks.TicksPerLine)
	m.PIA0.A.SetCx1(true)
	m.PIA0.B.SetCx1(true)
	m.SAM.VideoReset()
}

// videoLine runs at the end of every line
func (m *Machine) videoLine() {
	v := &m.video

	// HS is low for the duration of the sync pulse
	m.PIA0.A.SetCx1(false)
	m.Sched.Machine.Schedule(&v.hsyncEvent, v.lineEvent.At.Add(clocks.HSyncWidth))

	if v.line >= clocks.TopBorder && v.line < clocks.TopBorder+clocks.ActiveLines {
		m.SAM.VideoFetch(v.buf[:])
		m.SAM.VideoHSync()
		m.TV.Line(v.buf[:])
	} else {
		m.TV.Line(nil)
	}

	v.line++
	switch v.line {
	case clocks.TopBorder + clocks.ActiveLines:
		// FS falls at the end of the active area
		m.PIA0.B.SetCx1(false)
	case clocks.FSyncLine:
		m.PIA0.B.SetCx1(true)
		m.SAM.VideoReset()
	}

	if v.line >= v.lines {
		v.line = 0
		m.TV.NewFrame()
	}

	m.Sched.Machine.Schedule(&v.lineEvent, v.lineEvent.At.Add(clocks.TicksPerLine))
}

func (m *Machine) hsyncEnd() {
	m.PIA0.A.SetCx1(true)
}
