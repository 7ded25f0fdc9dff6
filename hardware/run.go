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

import "github.com/jetsetilly/gopherdragon/hardware/clocks"

// Run the machine for the number of master clock ticks. The CPU is stopped
// at the end of the step in which the budget runs out so the machine may run
// for slightly longer than requested.
func (m *Machine) Run(ticks int) {
	if ticks <= 0 {
		return
	}
	m.Sched.Machine.ScheduleIn(&m.runLimit, ticks)
	m.CPU.Run()
	m.Sched.Machine.Cancel(&m.runLimit)
}

// RunForFrameCount runs the machine for the specified number of frames.
// The continueCheck function is called at the end of every line's worth of
// ticks and can end the run early by returning false.
func (m *Machine) RunForFrameCount(frames int, continueCheck func(frame int) bool) {
	target := m.TV.GetCoords().Frame + frames
	for m.TV.GetCoords().Frame < target {
		m.Run(clocks.TicksPerLine)
		if continueCheck != nil && !continueCheck(m.TV.GetCoords().Frame) {
			return
		}
	}
}
