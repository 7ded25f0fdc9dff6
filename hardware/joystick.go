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

// Joystick is an analogue joystick. The axes are compared against the DAC by
// the machine when BASIC reads the joystick.
type Joystick struct {
	// axis values in the range 0 to 63
	X uint8
	Y uint8

	Fire bool
}

// Centre the joystick and release the fire button.
func (j *Joystick) Centre() {
	j.X = 32
	j.Y = 32
	j.Fire = false
}

// SetJoystick changes the state of one of the two joysticks. The inputs of
// PIA0 are updated immediately.
func (m *Machine) SetJoystick(n int, j Joystick) {
	m.Joysticks[n] = j
	m.updateInputs()
}

// the analogue multiplexer selects one of four sources for the comparator
// and the sound output. the select lines are CA2 and CB2 of PIA0
func (m *Machine) muxSource() int {
	var s int
	if m.PIA0.A.Cx2() {
		s |= 0x01
	}
	if m.PIA0.B.Cx2() {
		s |= 0x02
	}
	return s
}

// the six bit value of the DAC
func (m *Machine) dac() uint8 {
	return m.PIA1.A.Output() >> 2
}

// comparator returns true if the DAC value is greater than or equal to the
// joystick axis currently selected by the multiplexer
func (m *Machine) comparator() bool {
	var axis uint8
	switch m.muxSource() {
	case 0:
		axis = m.Joysticks[0].X
	case 1:
		axis = m.Joysticks[0].Y
	case 2:
		axis = m.Joysticks[1].X
	case 3:
		axis = m.Joysticks[1].Y
	}
	return m.dac() >= axis
}

// updateInputs sets the input lines of PIA0 port A from the keyboard, the
// fire buttons and the joystick comparator
func (m *Machine) updateInputs() {
	in := ^m.Keyboard.rows(m.PIA0.B.Value())
	if m.Joysticks[0].Fire {
		in &^= 0x01
	}
	if m.Joysticks[1].Fire {
		in &^= 0x02
	}
	if !m.comparator() {
		in &^= 0x80
	}
	m.PIA0.A.SetInput(in)
}
