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

// PortState is the state of a single port. The type has a fixed size and can
// be serialised with encoding/binary.
type PortState struct {
	Control           uint8
	Direction         uint8
	Output            uint8
	Input             uint8
	TiedLow           uint8
	InterruptReceived bool
	IRQ               bool
	Cx1               bool
}

// State is the state of both ports of a PIA.
type State struct {
	A PortState
	B PortState
}

func (p *Port) state() PortState {
	return PortState{
		Control:           p.control,
		Direction:         p.direction,
		Output:            p.output,
		Input:             p.input,
		TiedLow:           p.tiedLow,
		InterruptReceived: p.interruptReceived,
		IRQ:               p.irq,
		Cx1:               p.cx1,
	}
}

func (p *Port) setState(s PortState) {
	p.control = s.Control & 0x3f
	p.direction = s.Direction
	p.output = s.Output
	p.input = s.Input
	p.tiedLow = s.TiedLow
	p.interruptReceived = s.InterruptReceived
	p.irq = s.IRQ
	p.cx1 = s.Cx1
}

// State returns a copy of the PIA state.
func (pia *PIA) State() State {
	return State{A: pia.A.state(), B: pia.B.state()}
}

// SetState replaces the PIA state. The post write hooks are not called.
func (pia *PIA) SetState(s State) {
	pia.A.setState(s.A)
	pia.B.setState(s.B)
}
