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
	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/hardware/cpu"
	"github.com/jetsetilly/gopherdragon/hardware/future"
	"github.com/jetsetilly/gopherdragon/hardware/memory/sam"
	"github.com/jetsetilly/gopherdragon/hardware/pia"
	"github.com/jetsetilly/gopherdragon/hardware/television"
)

// Timing is the state of the machine's own events. Delays are measured from
// the clock at the time of the snapshot. A delay of -1 means the event was
// not scheduled. The type has a fixed size and can be serialised with
// encoding/binary.
type Timing struct {
	Frame  int32
	TVLine int32
	Line   int32

	LineDelay   int32
	HSyncDelay  int32
	SampleDelay int32
	CartDelay   int32

	CartLine bool
	Motor    bool

	Keyboard  [8]uint8
	Joysticks [2]Joystick
}

// State is a copy of the machine. It is produced by the Snapshot() function
// and can be restored with the Plumb() function.
//
// Note that the television and any attached tape player are not part of the
// snapshot.
type State struct {
	Now    future.Cycle
	CPU    cpu.State
	SAM    sam.State
	PIA0   pia.State
	PIA1   pia.State
	Timing Timing
	RAM    []uint8
}

func delay(ev *future.Event, now future.Cycle) int32 {
	if !ev.Queued() {
		return -1
	}
	return future.Diff(ev.At, now)
}

// Snapshot the state of the machine. Should only be called between
// instructions.
func (m *Machine) Snapshot() *State {
	now := m.Sched.Now()
	c := m.TV.GetCoords()
	return &State{
		Now:  now,
		CPU:  m.CPU.GetState(),
		SAM:  m.SAM.State(),
		PIA0: m.PIA0.State(),
		PIA1: m.PIA1.State(),
		Timing: Timing{
			Frame:       int32(c.Frame),
			TVLine:      int32(c.Line),
			Line:        int32(m.video.line),
			LineDelay:   delay(&m.video.lineEvent, now),
			HSyncDelay:  delay(&m.video.hsyncEvent, now),
			SampleDelay: delay(&m.sampleEvent, now),
			CartDelay:   delay(&m.cartEvent, now),
			CartLine:    m.cartLine,
			Motor:       m.motor,
			Keyboard:    m.Keyboard.matrix,
			Joysticks:   m.Joysticks,
		},
		RAM: append([]uint8{}, m.RAM...),
	}
}

func reschedule(q *future.Queue, ev *future.Event, now future.Cycle, delay int32) {
	q.Cancel(ev)
	if delay >= 0 {
		q.Schedule(ev, now.Add(int(delay)))
	}
}

// Plumb a previously snapshotted state into the machine. The state must have
// been taken from a machine with the same amount of RAM.
func (m *Machine) Plumb(s *State) error {
	if s == nil {
		return curated.Errorf("machine: cannot plumb in a nil state")
	}
	if len(s.RAM) != len(m.RAM) {
		return curated.Errorf("machine: state has %d bytes of RAM, machine has %d", len(s.RAM), len(m.RAM))
	}

	m.Sched.SetNow(s.Now)
	copy(m.RAM, s.RAM)
	m.CPU.SetState(s.CPU)
	m.SAM.SetState(s.SAM)
	m.PIA0.SetState(s.PIA0)
	m.PIA1.SetState(s.PIA1)

	t := s.Timing
	m.TV.SetCoords(television.Coords{Frame: int(t.Frame), Line: int(t.TVLine)})
	m.video.line = int(t.Line)
	m.cartLine = t.CartLine
	m.Keyboard.matrix = t.Keyboard
	m.Joysticks = t.Joysticks

	q := m.Sched.Machine
	reschedule(q, &m.video.lineEvent, s.Now, t.LineDelay)
	reschedule(q, &m.video.hsyncEvent, s.Now, t.HSyncDelay)
	reschedule(q, &m.sampleEvent, s.Now, t.SampleDelay)
	reschedule(q, &m.cartEvent, s.Now, t.CartDelay)
	q.Cancel(&m.runLimit)

	m.motor = t.Motor
	if m.tape != nil {
		m.tape.Motor(m.motor)
	}

	return nil
}
