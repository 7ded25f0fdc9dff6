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

// Control register bits.
const (
	ControlIRQEnable  = 0x01
	ControlRisingEdge = 0x02
	ControlData       = 0x04
	ControlCx2        = 0x38
	ControlIRQ        = 0x80
)

// Port is one side of a PIA.
type Port struct {
	// only the low six bits of the control register are stored. bit seven
	// is the interrupt received latch
	control   uint8
	direction uint8
	output    uint8

	// externally driven level of the port lines
	input uint8

	// lines that are hard wired low
	tiedLow uint8

	interruptReceived bool
	irq               bool
	cx1               bool

	// the A side outputs are open drain. a high output can be pulled low by
	// whatever is connected to the port
	sink bool

	// DataPostWrite is called after a write to the output or direction
	// register
	DataPostWrite func()

	// ControlPostWrite is called after a write to the control register that
	// changes the Cx2 control bits
	ControlPostWrite func()
}

func (p *Port) reset() {
	p.control = 0
	p.direction = 0
	p.output = 0
	p.interruptReceived = false
	p.irq = false
	if p.DataPostWrite != nil {
		p.DataPostWrite()
	}
}

// SetTiedLow sets the mask of lines that are hard wired low.
func (p *Port) SetTiedLow(mask uint8) {
	p.tiedLow = mask
}

// SetInput sets the level of the port lines as driven from outside the PIA.
func (p *Port) SetInput(v uint8) {
	p.input = v
}

// Input returns the level of the port lines driven from outside the PIA.
func (p *Port) Input() uint8 {
	return p.input
}

// Output returns the output register masked by the direction register.
// Input lines read as zero.
func (p *Port) Output() uint8 {
	return p.output & p.direction
}

// Direction returns the data direction register. A set bit is an output.
func (p *Port) Direction() uint8 {
	return p.direction
}

// Value returns the level of the port lines.
func (p *Port) Value() uint8 {
	var v uint8
	if p.sink {
		v = (p.output | ^p.direction) & p.input
	} else {
		v = p.output&p.direction | p.input&^p.direction
	}
	return v &^ p.tiedLow
}

// IRQ returns the state of the interrupt output for the port.
func (p *Port) IRQ() bool {
	return p.irq
}

// SetCx1 changes the level of the Cx1 line. An interrupt is latched if the
// transition is the one selected by the control register.
func (p *Port) SetCx1(level bool) {
	if level == p.cx1 {
		return
	}
	p.cx1 = level
	rising := p.control&ControlRisingEdge == ControlRisingEdge
	if rising == level {
		p.interruptReceived = true
		p.irq = p.control&ControlIRQEnable == ControlIRQEnable
	}
}

// Cx2 returns the level of the Cx2 line. Only the manual output mode drives
// the line low. In all other modes the line floats high.
func (p *Port) Cx2() bool {
	if p.control&0x30 == 0x30 {
		return p.control&0x08 == 0x08
	}
	return true
}

// ReadData reads the output or direction register, depending on bit 2 of the
// control register. Reading the output register clears the interrupt.
func (p *Port) ReadData() uint8 {
	if p.control&ControlData == 0 {
		return p.direction
	}
	p.interruptReceived = false
	p.irq = false
	return p.peekData()
}

func (p *Port) peekData() uint8 {
	if p.control&ControlData == 0 {
		return p.direction
	}
	if p.sink {
		return p.Value()
	}
	return p.output&p.direction | p.Value()&^p.direction
}

// WriteData writes the output or direction register.
func (p *Port) WriteData(data uint8) {
	if p.control&ControlData == 0 {
		p.direction = data
	} else {
		p.output = data
	}
	if p.DataPostWrite != nil {
		p.DataPostWrite()
	}
}

// ReadControl reads the control register. Bit 7 is the interrupt latch.
func (p *Port) ReadControl() uint8 {
	if p.interruptReceived {
		return p.control | ControlIRQ
	}
	return p.control
}

// WriteControl writes the low six bits of the control register. Enabling
// the interrupt with the latch already set raises the interrupt output.
func (p *Port) WriteControl(data uint8) {
	prev := p.control
	p.control = data & 0x3f
	p.irq = p.interruptReceived && p.control&ControlIRQEnable == ControlIRQEnable
	if p.ControlPostWrite != nil && (prev^p.control)&ControlCx2 != 0 {
		p.ControlPostWrite()
	}
}
