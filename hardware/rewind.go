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

import "github.com/jetsetilly/gopherdragon/curated"

// the maximum number of steps to store before the earliest steps are
// forgotten.
const maxRewindSteps = 100

// Rewind keeps a snapshot of the machine for each of the most recent frames.
type Rewind struct {
	m     *Machine
	steps []*State
	max   int

	// a new frame has been triggered. resolved when the CPU next checks its
	// interrupt lines
	newFrame bool
}

// EnableRewind starts recording a snapshot at the start of every frame. A
// maximum of zero or less selects the default number of frames. Calling the
// function again returns the existing Rewind.
func (m *Machine) EnableRewind(max int) *Rewind {
	if m.rewind != nil {
		return m.rewind
	}
	if max <= 0 {
		max = maxRewindSteps
	}
	r := &Rewind{
		m:     m,
		max:   max,
		steps: make([]*State, 0, max),
	}
	m.rewind = r
	m.TV.AddFrameTrigger(r)
	r.Reset()
	return r
}

// Reset rewind system to zero, taking a snapshot of the current state.
func (r *Rewind) Reset() {
	r.steps = r.steps[:0]
	r.newFrame = false
	r.append(r.m.Snapshot())
}

// NewFrame implements the television.FrameTrigger interface.
func (r *Rewind) NewFrame(frameNum int) error {
	r.newFrame = true
	return nil
}

// the frame is signalled from inside a bus cycle. the snapshot is taken once
// the CPU is between instructions
func (r *Rewind) resolve() {
	if !r.newFrame {
		return
	}
	r.newFrame = false
	r.append(r.m.Snapshot())
}

func (r *Rewind) append(s *State) {
	if len(r.steps) >= r.max {
		copy(r.steps, r.steps[1:])
		r.steps = r.steps[:len(r.steps)-1]
	}
	r.steps = append(r.steps, s)
}

// Len returns the number of snapshots available.
func (r *Rewind) Len() int {
	return len(r.steps)
}

// Back restores the machine to the snapshot taken the number of frames ago.
// Zero restores the most recent snapshot. Snapshots more recent than the one
// restored are forgotten.
func (r *Rewind) Back(frames int) error {
	if frames < 0 || frames >= len(r.steps) {
		return curated.Errorf("rewind: cannot go back %d frames (%d available)", frames, len(r.steps)-1)
	}
	idx := len(r.steps) - 1 - frames
	if err := r.m.Plumb(r.steps[idx]); err != nil {
		return curated.Errorf("rewind: %v", err)
	}
	r.steps = r.steps[:idx+1]
	return nil
}
