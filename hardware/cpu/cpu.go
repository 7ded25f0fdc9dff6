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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopherdragon/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdragon/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdragon/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdragon/logger"
)

// CPU implements the 6809 found in the Dragon and CoCo range of computers.
type CPU struct {
	CC registers.CC
	A  uint8
	B  uint8
	DP uint8
	X  uint16
	Y  uint16
	U  uint16
	S  uint16
	PC uint16

	// request lines. these are set by the machine, usually in the SyncHook
	HALT bool
	NMI  bool
	FIRQ bool
	IRQ  bool

	// the current state of the CPU state machine
	Exec ExecState

	// Run() continues until Running is false
	Running bool

	// the number of bus cycles made by the CPU since creation. this is not
	// the same as the number of oscillator ticks
	BusCycles uint64

	// called before interrupt lines are checked
	SyncHook func()

	// called before an instruction is fetched and after it completes
	InstructionHook     func()
	InstructionPostHook func()

	// called before an interrupt vector is read
	InterruptHook func(vector uint16)

	// the definition of the most recently decoded instruction and the address
	// of its first byte (including any prefix)
	LastDefn    *instructions.Definition
	LastAddress uint16

	bus cpubus.Bus

	// NMI is ignored until S has been written to. an edge on the NMI line is
	// latched along with the bus cycle it was seen on
	nmiArmed   bool
	nmiLatched bool
	nmiLine    bool
	nmiAt      uint64

	// cycle accounting for the current instruction. used is the number of
	// bus cycles made so far, extra is the number of cycles over the base
	// cycles for the definition and prefixes is the number of prefix bytes
	used     int
	extra    int
	prefixes int
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// will be in the reset state.
func NewCPU(bus cpubus.Bus) *CPU {
	return &CPU{
		bus:  bus,
		Exec: Reset,
	}
}

// Plumb a new bus into the CPU.
func (mc *CPU) Plumb(bus cpubus.Bus) {
	mc.bus = bus
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x A=%02x B=%02x X=%04x Y=%04x U=%04x S=%04x DP=%02x CC=%s",
		mc.PC, mc.A, mc.B, mc.X, mc.Y, mc.U, mc.S, mc.DP, mc.CC)
}

// D returns the value of the A and B accumulators as a 16bit value.
func (mc *CPU) D() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.B)
}

// SetD sets the A and B accumulators from a 16bit value.
func (mc *CPU) SetD(v uint16) {
	mc.A = uint8(v >> 8)
	mc.B = uint8(v)
}

// Reset the CPU. The reset sequence is performed by the next call to Step().
func (mc *CPU) Reset() {
	mc.Exec = Reset
	mc.LastDefn = nil
}

// Run the CPU until Running is set to false.
func (mc *CPU) Run() {
	mc.Running = true
	for mc.Running {
		mc.Step()
	}
}

// Stop the CPU at the end of the current step.
func (mc *CPU) Stop() {
	mc.Running = false
}

// StepInstruction calls Step() until an instruction or interrupt dispatch has
// completed, or until the CPU enters a waiting state.
func (mc *CPU) StepInstruction() {
	for {
		mc.Step()
		switch mc.Exec {
		case LabelA, ResetCheckHalt:
			return
		}
		if mc.Exec.Waiting() {
			return
		}
	}
}

// Step performs one step of the CPU state machine.
func (mc *CPU) Step() {
	switch mc.Exec {
	case Reset:
		mc.DP = 0
		mc.CC |= registers.FIRQMask | registers.IRQMask
		mc.nmiArmed = false
		mc.nmiLatched = false
		mc.used = 0
		mc.prefixes = 0
		mc.Exec = ResetCheckHalt

	case ResetCheckHalt:
		if mc.HALT {
			mc.dead(1)
			return
		}
		mc.PC = mc.vector(cpubus.VectorReset)
		mc.dead(1)
		mc.Exec = LabelA

	case LabelA:
		if mc.HALT {
			mc.dead(1)
			return
		}
		mc.Exec = LabelB

	case LabelB:
		if mc.SyncHook != nil {
			mc.SyncHook()
		}
		mc.sampleNMI()
		if mc.interrupt() {
			mc.Exec = LabelA
			return
		}
		mc.Exec = NextInstruction

	case NextInstruction:
		if mc.InstructionHook != nil {
			mc.InstructionHook()
		}
		mc.used = 0
		mc.extra = 0
		mc.prefixes = 0
		mc.LastAddress = mc.PC

		opcode := mc.fetch8()
		switch opcode {
		case 0x10:
			mc.prefixes++
			mc.Exec = InstructionPage2
		case 0x11:
			mc.prefixes++
			mc.Exec = InstructionPage3
		default:
			mc.execute(instructions.Lookup(1, opcode))
		}

	case InstructionPage2, InstructionPage3:
		opcode := mc.fetch8()

		// further prefix bytes do not change the page
		if opcode == 0x10 || opcode == 0x11 {
			mc.prefixes++
			return
		}

		page := 2
		if mc.Exec == InstructionPage3 {
			page = 3
		}

		// opcodes that are not defined on the page are executed as though
		// there was no prefix
		defn := instructions.Lookup(page, opcode)
		if defn == nil {
			defn = instructions.Lookup(1, opcode)
		}
		mc.execute(defn)

	case CwaiCheckHalt:
		if mc.HALT {
			mc.dead(1)
			return
		}
		mc.Exec = DispatchIRQ

	case DispatchIRQ:
		// the entire register set has already been stacked by CWAI
		if mc.SyncHook != nil {
			mc.SyncHook()
		}
		mc.sampleNMI()

		if mc.nmiPending() {
			mc.nmiLatched = false
			mc.takeInterrupt(registers.FIRQMask|registers.IRQMask, cpubus.VectorNMI)
			mc.Exec = LabelA
			return
		}
		if mc.FIRQ && !mc.CC.Is(registers.FIRQMask) {
			mc.takeInterrupt(registers.FIRQMask|registers.IRQMask, cpubus.VectorFIRQ)
			mc.Exec = LabelA
			return
		}
		if mc.IRQ && !mc.CC.Is(registers.IRQMask) {
			mc.takeInterrupt(registers.IRQMask, cpubus.VectorIRQ)
			mc.Exec = LabelA
			return
		}
		mc.dead(1)
		mc.Exec = CwaiCheckHalt

	case Sync:
		if mc.SyncHook != nil {
			mc.SyncHook()
		}
		mc.sampleNMI()

		// any interrupt line ends the SYNC, even if it is masked. if it is
		// not masked it will be dispatched in LabelB
		if mc.nmiLatched || mc.FIRQ || mc.IRQ {
			mc.dead(1)
			mc.Exec = LabelA
			return
		}
		mc.dead(1)
		mc.Exec = SyncCheckHalt

	case SyncCheckHalt:
		if mc.HALT {
			mc.dead(1)
			return
		}
		mc.Exec = Sync

	case HCF:
		// the address bus counts upwards forever
		mc.read(mc.PC)
		mc.PC++
	}
}

// execute a decoded instruction. the opcode (and any prefix) has already been
// fetched.
func (mc *CPU) execute(defn *instructions.Definition) {
	mc.LastDefn = defn
	mc.Exec = LabelA

	switch {
	case defn.Operator.IsUnary():
		mc.unary(defn)
	case defn.Operator.IsBinary():
		mc.binary(defn)
	default:
		mc.other(defn)
	}

	// instructions that wait for an interrupt or lock the CPU continue in
	// another state. every other instruction takes exactly the number of
	// cycles in the definition plus any variable cycles
	if mc.Exec == LabelA {
		want := defn.Cycles + mc.extra + mc.prefixes
		if defn.Page > 1 {
			want--
		}
		if mc.used < want {
			mc.dead(want - mc.used)
		}
	}

	if mc.InstructionPostHook != nil {
		mc.InstructionPostHook()
	}
}

func (mc *CPU) enterHCF() {
	mc.Exec = HCF
	logger.Logf(logger.Allow, "CPU", "halt and catch fire at %04x", mc.LastAddress)
}
