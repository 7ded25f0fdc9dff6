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

// Step the machine by one CPU instruction. If the CPU is waiting for an
// interrupt, or has locked up, then only a single internal step is taken.
func (m *Machine) Step() {
	m.CPU.StepInstruction()
}

// StepFrame runs the machine until the start of the next frame.
func (m *Machine) StepFrame() {
	m.RunForFrameCount(1, nil)
}
