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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherdragon/hardware/cpu"
	"github.com/jetsetilly/gopherdragon/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdragon/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdragon/test"
)

const (
	nmiHandler  = uint16(0x3000)
	firqHandler = uint16(0x3100)
	irqHandler  = uint16(0x3200)
)

func newInterruptCPU(t *testing.T, program ...uint8) (*cpu.CPU, *mockBus) {
	t.Helper()
	mc, bus := newCPU(t, program...)
	bus.putVector(cpubus.VectorNMI, nmiHandler)
	bus.putVector(cpubus.VectorFIRQ, firqHandler)
	bus.putVector(cpubus.VectorIRQ, irqHandler)
	return mc, bus
}

func TestInterruptPriority(t *testing.T) {
	mc, bus := newInterruptCPU(t,
		0x10, 0xce, 0x80, 0x00, // LDS #$8000
		0x1c, 0x00, // ANDCC #$00
		0x12, // NOP
	)
	bus.putInstructions(nmiHandler, 0x1c, 0x00)  // ANDCC #$00
	bus.putInstructions(firqHandler, 0x1c, 0xef) // ANDCC #$ef

	var vectors []uint16
	mc.InterruptHook = func(vector uint16) {
		vectors = append(vectors, vector)
	}

	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.CC, registers.CC(0))

	// the NMI edge is latched but is not acted upon until it is at least one
	// bus cycle old
	mc.NMI = true
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+7)

	mc.FIRQ = true
	mc.IRQ = true
	test.ExpectEquality(t, step(mc, bus), 19)
	test.ExpectEquality(t, mc.PC, nmiHandler)
	test.ExpectEquality(t, mc.S, uint16(0x8000-12))
	test.ExpectSuccess(t, mc.CC.Is(registers.EntireFlag|registers.FIRQMask|registers.IRQMask))

	// all interrupts are masked
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, nmiHandler+2)

	// the NMI line is still high but NMI is edge triggered
	test.ExpectEquality(t, step(mc, bus), 10)
	test.ExpectEquality(t, mc.PC, firqHandler)
	test.ExpectEquality(t, mc.S, uint16(0x8000-15))
	test.ExpectFailure(t, mc.CC.Is(registers.EntireFlag))
	test.ExpectSuccess(t, mc.CC.Is(registers.FIRQMask|registers.IRQMask))

	// unmask IRQ only
	step(mc, bus)
	test.ExpectEquality(t, step(mc, bus), 19)
	test.ExpectEquality(t, mc.PC, irqHandler)
	test.ExpectSuccess(t, mc.CC.Is(registers.EntireFlag|registers.IRQMask))

	test.ExpectEquality(t, len(vectors), 3)
	test.ExpectEquality(t, vectors[0], cpubus.VectorNMI)
	test.ExpectEquality(t, vectors[1], cpubus.VectorFIRQ)
	test.ExpectEquality(t, vectors[2], cpubus.VectorIRQ)
}

func TestNMIArming(t *testing.T) {
	mc, bus := newInterruptCPU(t,
		0x12, 0x12, // NOP; NOP
		0x10, 0xce, 0x80, 0x00, // LDS #$8000
		0x12, 0x12, 0x12, 0x12, // NOP; NOP; NOP; NOP
	)

	// NMI is ignored before S is loaded
	mc.NMI = true
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+2)

	// loading S arms NMI but the line has not changed
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+7)

	mc.NMI = false
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+8)

	mc.NMI = true
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+9)
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, nmiHandler)

	// RTI returns to the interrupted program
	bus.putInstructions(nmiHandler, 0x3b)
	test.ExpectEquality(t, step(mc, bus), 15)
	test.ExpectEquality(t, mc.PC, origin+9)
	test.ExpectEquality(t, mc.S, uint16(0x8000))
}

func TestNMIArmedByTransfer(t *testing.T) {
	// TFR X,S; NOP; NOP
	mc, bus := newInterruptCPU(t, 0x1f, 0x14, 0x12, 0x12)
	mc.X = 0x8000
	step(mc, bus)

	mc.NMI = true
	step(mc, bus)
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, nmiHandler)
}

func TestSync(t *testing.T) {
	mc, bus := newInterruptCPU(t, 0x13, 0x12) // SYNC; NOP

	var syncs int
	mc.SyncHook = func() {
		syncs++
	}

	step(mc, bus)
	test.ExpectEquality(t, mc.Exec, cpu.Sync)

	// waiting for an interrupt still consumes cycles
	for i := 0; i < 10; i++ {
		mc.StepInstruction()
	}
	test.ExpectSuccess(t, mc.Exec.Waiting())
	test.ExpectEquality(t, mc.PC, origin+1)
	test.ExpectSuccess(t, bus.cycles > 2)
	test.ExpectSuccess(t, syncs > 0)

	// a masked interrupt ends SYNC without being dispatched
	mc.IRQ = true
	for i := 0; i < 3 && mc.Exec != cpu.LabelA; i++ {
		mc.StepInstruction()
	}
	test.ExpectEquality(t, mc.Exec, cpu.LabelA)
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, origin+2)
}

func TestCWAI(t *testing.T) {
	mc, bus := newInterruptCPU(t,
		0x10, 0xce, 0x80, 0x00, // LDS #$8000
		0x3c, 0xef, // CWAI #$ef
	)
	step(mc, bus)

	// the register set is stacked before waiting
	test.ExpectEquality(t, step(mc, bus), 16)
	test.ExpectEquality(t, mc.S, uint16(0x8000-12))
	test.ExpectSuccess(t, mc.CC.Is(registers.EntireFlag))
	test.ExpectFailure(t, mc.CC.Is(registers.IRQMask))

	for i := 0; i < 10; i++ {
		mc.StepInstruction()
	}
	test.ExpectSuccess(t, mc.Exec.Waiting())

	// FIRQ is still masked
	mc.FIRQ = true
	for i := 0; i < 10; i++ {
		mc.StepInstruction()
	}
	test.ExpectSuccess(t, mc.Exec.Waiting())

	mc.IRQ = true
	for i := 0; i < 3 && mc.Exec != cpu.LabelA; i++ {
		mc.StepInstruction()
	}
	test.ExpectEquality(t, mc.PC, irqHandler)
	test.ExpectEquality(t, mc.S, uint16(0x8000-12))
	test.ExpectSuccess(t, mc.CC.Is(registers.IRQMask))
}

func TestSoftwareInterrupts(t *testing.T) {
	mc, bus := newCPU(t, 0x10, 0x3f)
	bus.putVector(cpubus.VectorSWI2, 0x4444)
	mc.CC = 0
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, uint16(0x4444))

	// SWI2 and SWI3 do not mask interrupts
	test.ExpectEquality(t, mc.CC, registers.EntireFlag)

	mc, bus = newCPU(t, 0x3f)
	bus.putVector(cpubus.VectorSWI, 0x5555)
	mc.CC = 0
	step(mc, bus)
	test.ExpectEquality(t, mc.PC, uint16(0x5555))
	test.ExpectSuccess(t, mc.CC.Is(registers.EntireFlag|registers.FIRQMask|registers.IRQMask))
}
