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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopherdragon/hardware/cpu"
	"github.com/jetsetilly/gopherdragon/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdragon/logger"
)

// Tracer writes every instruction executed by the CPU to an io.Writer.
type Tracer struct {
	mc  *cpu.CPU
	mem cpubus.Peeker
	w   io.Writer

	// the hooks that were installed when the tracer was attached. they are
	// still called and are restored on Detach()
	instructionHook func()
	interruptHook   func(uint16)

	attached bool
}

// NewTracer is the preferred method of initialisation for the Tracer type.
// The tracer is not attached to the CPU until Attach() is called.
func NewTracer(mc *cpu.CPU, mem cpubus.Peeker, w io.Writer) *Tracer {
	return &Tracer{
		mc:  mc,
		mem: mem,
		w:   w,
	}
}

// Attach the tracer to the CPU hooks.
func (tr *Tracer) Attach() {
	if tr.attached {
		return
	}
	tr.attached = true
	tr.instructionHook = tr.mc.InstructionHook
	tr.interruptHook = tr.mc.InterruptHook
	tr.mc.InstructionHook = tr.instruction
	tr.mc.InterruptHook = tr.interrupt
}

// Detach the tracer and restore the previous hooks.
func (tr *Tracer) Detach() {
	if !tr.attached {
		return
	}
	tr.attached = false
	tr.mc.InstructionHook = tr.instructionHook
	tr.mc.InterruptHook = tr.interruptHook
}

// Attached returns true if the tracer is attached to the CPU.
func (tr *Tracer) Attached() bool {
	return tr.attached
}

func (tr *Tracer) registers() string {
	return fmt.Sprintf("A=%02x B=%02x X=%04x Y=%04x U=%04x S=%04x DP=%02x CC=%s",
		tr.mc.A, tr.mc.B, tr.mc.X, tr.mc.Y, tr.mc.U, tr.mc.S, tr.mc.DP, tr.mc.CC)
}

func (tr *Tracer) instruction() {
	if tr.instructionHook != nil {
		tr.instructionHook()
	}
	e := Decode(tr.mem, tr.mc.PC)
	tr.write(fmt.Sprintf("%-42s %s", e.String(), tr.registers()))
}

var vectorNames = map[uint16]string{
	cpubus.VectorSWI3:  "SWI3",
	cpubus.VectorSWI2:  "SWI2",
	cpubus.VectorFIRQ:  "FIRQ",
	cpubus.VectorIRQ:   "IRQ",
	cpubus.VectorSWI:   "SWI",
	cpubus.VectorNMI:   "NMI",
	cpubus.VectorReset: "RESET",
}

func (tr *Tracer) interrupt(vector uint16) {
	if tr.interruptHook != nil {
		tr.interruptHook(vector)
	}
	name, ok := vectorNames[vector]
	if !ok {
		name = "unknown"
	}
	tr.write(fmt.Sprintf("****  %s vector %04x", name, vector))
}

// a failed write detaches the tracer. there is no point continuing
func (tr *Tracer) write(s string) {
	if _, err := fmt.Fprintln(tr.w, s); err != nil {
		logger.Logf(logger.Allow, "tracer", "%v", err)
		tr.Detach()
	}
}
