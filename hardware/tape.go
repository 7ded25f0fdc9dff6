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

// Tape is implemented by tape players. The player is told when the motor
// relay changes and feeds its signal to the machine with SetTapeInput().
type Tape interface {
	Motor(on bool)
}

// AttachTape connects a tape player to the machine. A nil argument
// disconnects the current player.
func (m *Machine) AttachTape(t Tape) {
	m.tape = t
	if t != nil {
		t.Motor(m.motor)
	}
}

// Motor returns the state of the cassette motor relay.
func (m *Machine) Motor() bool {
	return m.motor
}

// the motor relay is driven by CA2 of PIA1
func (m *Machine) updateMotor() {
	on := m.PIA1.A.ReadControl()&0x08 == 0x08
	if on == m.motor {
		return
	}
	m.motor = on
	if m.tape != nil {
		m.tape.Motor(on)
	}
}

// SetTapeInput sets the level of the cassette input, bit 0 of PIA1 port A.
func (m *Machine) SetTapeInput(high bool) {
	in := m.PIA1.A.Input()
	if high {
		in |= 0x01
	} else {
		in &^= 0x01
	}
	m.PIA1.A.SetInput(in)
}
