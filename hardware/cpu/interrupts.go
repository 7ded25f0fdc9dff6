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
	"github.com/jetsetilly/gopherdragon/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdragon/hardware/memory/cpubus"
)

// armNMI is called whenever the S register is written to.
func (mc *CPU) armNMI() {
	mc.nmiArmed = true
}

// latch a rising edge on the NMI line.
func (mc *CPU) sampleNMI() {
	if mc.NMI && !mc.nmiLine && mc.nmiArmed {
		mc.nmiLatched = true
		mc.nmiAt = mc.BusCycles
	}
	mc.nmiLine = mc.NMI
}

// a latched NMI is only recognised once it is at least one bus cycle old.
func (mc *CPU) nmiPending() bool {
	return mc.nmiLatched && mc.BusCycles > mc.nmiAt
}

// check for an interrupt in priority order and dispatch it. returns true if
// an interrupt was dispatched.
func (mc *CPU) interrupt() bool {
	if mc.nmiPending() {
		mc.nmiLatched = false
		mc.dummyRead()
		mc.dummyRead()
		mc.stackEntire()
		mc.takeInterrupt(registers.FIRQMask|registers.IRQMask, cpubus.VectorNMI)
		return true
	}

	if mc.FIRQ && !mc.CC.Is(registers.FIRQMask) {
		mc.dummyRead()
		mc.dummyRead()
		mc.stackPartial()
		mc.takeInterrupt(registers.FIRQMask|registers.IRQMask, cpubus.VectorFIRQ)
		return true
	}

	if mc.IRQ && !mc.CC.Is(registers.IRQMask) {
		mc.dummyRead()
		mc.dummyRead()
		mc.stackEntire()
		mc.takeInterrupt(registers.IRQMask, cpubus.VectorIRQ)
		return true
	}

	return false
}

// push all registers to the S stack with the E flag set.
func (mc *CPU) stackEntire() {
	mc.dead(1)
	mc.CC |= registers.EntireFlag
	mc.push16(&mc.S, mc.PC)
	mc.push16(&mc.S, mc.U)
	mc.push16(&mc.S, mc.Y)
	mc.push16(&mc.S, mc.X)
	mc.push8(&mc.S, mc.DP)
	mc.push8(&mc.S, mc.B)
	mc.push8(&mc.S, mc.A)
	mc.push8(&mc.S, uint8(mc.CC))
}

// push PC and CC to the S stack with the E flag clear.
func (mc *CPU) stackPartial() {
	mc.dead(1)
	mc.CC &^= registers.EntireFlag
	mc.push16(&mc.S, mc.PC)
	mc.push8(&mc.S, uint8(mc.CC))
}

// set the mask bits in CC and load PC from the vector.
func (mc *CPU) takeInterrupt(mask registers.CC, vector uint16) {
	mc.dead(1)
	mc.CC |= mask
	mc.PC = mc.vector(vector)
	mc.dead(1)
}

func (mc *CPU) vector(vector uint16) uint16 {
	if mc.InterruptHook != nil {
		mc.InterruptHook(vector)
	}
	return mc.read16(vector)
}
