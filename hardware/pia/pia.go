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

package pia

import "fmt"

// PIA is a single MC6821 with its two ports.
type PIA struct {
	Label string
	A     Port
	B     Port
}

// NewPIA is the preferred method of initialisation for the PIA type.
func NewPIA(label string) *PIA {
	pia := &PIA{Label: label}
	pia.A.sink = true
	pia.A.input = 0xff
	pia.B.input = 0xff
	return pia
}

func (pia *PIA) String() string {
	return fmt.Sprintf("%s: A: CR=%02x DDR=%02x OR=%02x  B: CR=%02x DDR=%02x OR=%02x", pia.Label,
		pia.A.ReadControl(), pia.A.direction, pia.A.output,
		pia.B.ReadControl(), pia.B.direction, pia.B.output)
}

// Reset both ports. Input levels and tied low masks are not affected.
func (pia *PIA) Reset() {
	pia.A.reset()
	pia.B.reset()
}

// IRQ returns true if either port is asserting its interrupt output.
func (pia *PIA) IRQ() bool {
	return pia.A.irq || pia.B.irq
}

// Read one of the four registers.
func (pia *PIA) Read(reg uint8) uint8 {
	switch reg & 0x03 {
	case 0:
		return pia.A.ReadData()
	case 1:
		return pia.A.ReadControl()
	case 2:
		return pia.B.ReadData()
	}
	return pia.B.ReadControl()
}

// Peek reads one of the four registers without clearing any interrupt.
func (pia *PIA) Peek(reg uint8) uint8 {
	switch reg & 0x03 {
	case 0:
		return pia.A.peekData()
	case 1:
		return pia.A.ReadControl()
	case 2:
		return pia.B.peekData()
	}
	return pia.B.ReadControl()
}

// Write one of the four registers.
func (pia *PIA) Write(reg uint8, data uint8) {
	switch reg & 0x03 {
	case 0:
		pia.A.WriteData(data)
	case 1:
		pia.A.WriteControl(data)
	case 2:
		pia.B.WriteData(data)
	case 3:
		pia.B.WriteControl(data)
	}
}
