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
	"github.com/jetsetilly/gopherdragon/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdragon/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdragon/hardware/memory/cpubus"
)

// effectiveAddress returns the address for the direct, extended and indexed
// addressing modes.
func (mc *CPU) effectiveAddress(mode instructions.AddressingMode) uint16 {
	switch mode {
	case instructions.Direct:
		ea := uint16(mc.DP)<<8 | uint16(mc.fetch8())
		mc.dead(1)
		return ea
	case instructions.Extended:
		ea := mc.fetch16()
		mc.dead(1)
		return ea
	case instructions.Indexed:
		return mc.indexed()
	}
	panic("cpu: effective address for non-memory addressing mode")
}

func (mc *CPU) reg8(r instructions.Register) *uint8 {
	if r == instructions.B {
		return &mc.B
	}
	return &mc.A
}

func (mc *CPU) reg16(r instructions.Register) uint16 {
	switch r {
	case instructions.D:
		return mc.D()
	case instructions.X:
		return mc.X
	case instructions.Y:
		return mc.Y
	case instructions.U:
		return mc.U
	case instructions.S:
		return mc.S
	}
	return 0
}

func (mc *CPU) setReg16(r instructions.Register, v uint16) {
	switch r {
	case instructions.D:
		mc.SetD(v)
	case instructions.X:
		mc.X = v
	case instructions.Y:
		mc.Y = v
	case instructions.U:
		mc.U = v
	case instructions.S:
		mc.S = v
		mc.armNMI()
	}
}

// unary operators work on an accumulator or on memory.
func (mc *CPU) unary(defn *instructions.Definition) {
	op := func(v uint8) uint8 {
		switch defn.Operator {
		case instructions.NEG:
			return mc.neg(v)
		case instructions.NGC:
			if mc.CC.Is(registers.Carry) {
				return mc.com(v)
			}
			return mc.neg(v)
		case instructions.COM:
			return mc.com(v)
		case instructions.LSR:
			return mc.lsr(v)
		case instructions.ROR:
			return mc.ror(v)
		case instructions.ASR:
			return mc.asr(v)
		case instructions.ASL:
			return mc.asl(v)
		case instructions.ROL:
			return mc.rol(v)
		case instructions.DEC:
			return mc.dec(v)
		case instructions.INC:
			return mc.inc(v)
		case instructions.TST:
			return mc.logic8(v)
		case instructions.CLR:
			return mc.clr()
		}
		return v
	}

	if defn.Mode == instructions.Inherent {
		mc.dummyRead()
		r := mc.reg8(defn.Register)
		*r = op(*r)
		return
	}

	ea := mc.effectiveAddress(defn.Mode)
	if defn.Operator == instructions.JMP {
		mc.PC = ea
		return
	}

	v := mc.read(ea)
	v = op(v)
	mc.dead(1)

	if defn.Operator == instructions.TST {
		mc.dead(1)
		return
	}
	mc.write(ea, v)
}

// binary operators combine a register with an operand.
func (mc *CPU) binary(defn *instructions.Definition) {
	wide := defn.Register.Is16Bit()

	// stores do not read an operand. the undocumented immediate mode stores
	// write to the address of the operand in the instruction stream
	if defn.Operator == instructions.ST {
		var ea uint16
		if defn.Mode == instructions.Immediate {
			ea = mc.PC
			if wide {
				mc.PC += 2
			} else {
				mc.PC++
			}
		} else {
			ea = mc.effectiveAddress(defn.Mode)
		}

		if wide {
			v := mc.reg16(defn.Register)
			mc.logic16(v)
			mc.write16(ea, v)
		} else {
			v := *mc.reg8(defn.Register)
			mc.logic8(v)
			mc.write(ea, v)
		}
		return
	}

	if wide {
		var v uint16
		if defn.Mode == instructions.Immediate {
			v = mc.fetch16()
		} else {
			v = mc.read16(mc.effectiveAddress(defn.Mode))
		}

		switch defn.Operator {
		case instructions.LD:
			mc.setReg16(defn.Register, mc.logic16(v))
		case instructions.SUB:
			mc.setReg16(defn.Register, mc.sub16(mc.reg16(defn.Register), v))
			mc.dead(1)
		case instructions.ADD:
			mc.setReg16(defn.Register, mc.add16(mc.reg16(defn.Register), v))
			mc.dead(1)
		case instructions.CMP:
			mc.sub16(mc.reg16(defn.Register), v)
			mc.dead(1)
		}
		return
	}

	var v uint8
	if defn.Mode == instructions.Immediate {
		v = mc.fetch8()
	} else {
		v = mc.read(mc.effectiveAddress(defn.Mode))
	}

	r := mc.reg8(defn.Register)
	switch defn.Operator {
	case instructions.SUB:
		*r = mc.sub8(*r, v, 0)
	case instructions.CMP:
		mc.sub8(*r, v, 0)
	case instructions.SBC:
		*r = mc.sub8(*r, v, mc.carry())
	case instructions.AND:
		*r = mc.logic8(*r & v)
	case instructions.BIT:
		mc.logic8(*r & v)
	case instructions.LD:
		*r = mc.logic8(v)
	case instructions.EOR:
		*r = mc.logic8(*r ^ v)
	case instructions.ADC:
		*r = mc.add8(*r, v, mc.carry())
	case instructions.OR:
		*r = mc.logic8(*r | v)
	case instructions.ADD:
		*r = mc.add8(*r, v, 0)
	}
}

func (mc *CPU) condition(c instructions.Condition) bool {
	n := mc.CC.Is(registers.Negative)
	z := mc.CC.Is(registers.Zero)
	v := mc.CC.Is(registers.Overflow)
	cf := mc.CC.Is(registers.Carry)

	switch c {
	case instructions.Always:
		return true
	case instructions.Never:
		return false
	case instructions.Higher:
		return !cf && !z
	case instructions.LowerSame:
		return cf || z
	case instructions.CarryClear:
		return !cf
	case instructions.CarrySet:
		return cf
	case instructions.NotEqual:
		return !z
	case instructions.Equal:
		return z
	case instructions.OverflowClear:
		return !v
	case instructions.OverflowSet:
		return v
	case instructions.Plus:
		return !n
	case instructions.Minus:
		return n
	case instructions.GreaterEqual:
		return n == v
	case instructions.Less:
		return n != v
	case instructions.Greater:
		return !z && n == v
	case instructions.LessEqual:
		return z || n != v
	}
	return false
}

// everything that isn't a unary or binary operator.
func (mc *CPU) other(defn *instructions.Definition) {
	switch defn.Operator {
	case instructions.Branch:
		if defn.Mode == instructions.Relative {
			offset := sex8(mc.fetch8())
			mc.dead(1)
			if mc.condition(defn.Condition) {
				mc.PC += offset
			}
			return
		}

		offset := mc.fetch16()
		mc.dead(1)
		if mc.condition(defn.Condition) {
			// LBRA on page one takes the same time regardless. conditional
			// long branches take one more cycle when taken
			if defn.Page > 1 {
				mc.extra++
			}
			mc.dead(1)
			mc.PC += offset
		}

	case instructions.BSR:
		var offset uint16
		if defn.Mode == instructions.Relative {
			offset = sex8(mc.fetch8())
			mc.dead(3)
		} else {
			offset = mc.fetch16()
			mc.dead(4)
		}
		mc.push16(&mc.S, mc.PC)
		mc.PC += offset

	case instructions.JSR:
		ea := mc.effectiveAddress(defn.Mode)
		mc.read(ea)
		mc.dead(1)
		mc.push16(&mc.S, mc.PC)
		mc.PC = ea

	case instructions.RTS:
		mc.dummyRead()
		mc.PC = mc.pull16(&mc.S)
		mc.dead(1)

	case instructions.RTI:
		mc.dummyRead()
		mc.CC = registers.CC(mc.pull8(&mc.S))
		if mc.CC.Is(registers.EntireFlag) {
			mc.extra += 9
			mc.A = mc.pull8(&mc.S)
			mc.B = mc.pull8(&mc.S)
			mc.DP = mc.pull8(&mc.S)
			mc.X = mc.pull16(&mc.S)
			mc.Y = mc.pull16(&mc.S)
			mc.U = mc.pull16(&mc.S)
		}
		mc.PC = mc.pull16(&mc.S)
		mc.dead(1)

	case instructions.SWI:
		mc.dummyRead()
		mc.stackEntire()
		mc.takeInterrupt(registers.FIRQMask|registers.IRQMask, cpubus.VectorSWI)

	case instructions.SWI2:
		mc.dummyRead()
		mc.stackEntire()
		mc.takeInterrupt(0, cpubus.VectorSWI2)

	case instructions.SWI3:
		mc.dummyRead()
		mc.stackEntire()
		mc.takeInterrupt(0, cpubus.VectorSWI3)

	case instructions.RESET:
		mc.dummyRead()
		mc.stackEntire()
		mc.takeInterrupt(registers.FIRQMask|registers.IRQMask, cpubus.VectorReset)

	case instructions.CWAI:
		mc.CC &= registers.CC(mc.fetch8())
		mc.dummyRead()
		mc.stackEntire()
		mc.Exec = CwaiCheckHalt

	case instructions.SYNC:
		mc.dummyRead()
		mc.Exec = Sync

	case instructions.HCF:
		mc.enterHCF()

	case instructions.NOP:
		mc.dummyRead()

	case instructions.DAA:
		mc.dummyRead()
		mc.daa()

	case instructions.SEX:
		mc.dummyRead()
		mc.sex()

	case instructions.MUL:
		mc.dummyRead()
		mc.mul()
		mc.dead(9)

	case instructions.ABX:
		mc.dummyRead()
		mc.X += uint16(mc.B)
		mc.dead(1)

	case instructions.SHCC:
		mc.dummyRead()
		mc.CC = (mc.CC << 1) & (registers.HalfCarry | registers.Zero)
		mc.dead(1)

	case instructions.ORCC:
		mc.CC |= registers.CC(mc.fetch8())
		mc.dead(1)

	case instructions.ANDCC:
		mc.CC &= registers.CC(mc.fetch8())
		mc.dead(1)

	case instructions.TFR:
		postbyte := mc.fetch8()
		mc.setReg(registers.Code(postbyte&0x0f), mc.getReg(registers.Code(postbyte>>4)))
		mc.dead(4)

	case instructions.EXG:
		postbyte := mc.fetch8()
		src := registers.Code(postbyte >> 4)
		dst := registers.Code(postbyte & 0x0f)
		a := mc.getReg(src)
		b := mc.getReg(dst)
		mc.setReg(dst, a)
		mc.setReg(src, b)
		mc.dead(6)

	case instructions.LEA:
		ea := mc.indexed()
		mc.setReg16(defn.Register, ea)

		// only LEAX and LEAY affect the condition codes
		if defn.Register == instructions.X || defn.Register == instructions.Y {
			mc.CC.Set(registers.Zero, ea == 0)
		}
		mc.dead(1)

	case instructions.PSH:
		postbyte := mc.fetch8()
		if defn.Register == instructions.U {
			mc.psh(&mc.U, mc.S, postbyte)
		} else {
			mc.psh(&mc.S, mc.U, postbyte)
		}

	case instructions.PUL:
		postbyte := mc.fetch8()
		if defn.Register == instructions.U {
			mc.pul(&mc.U, &mc.S, postbyte)
		} else {
			mc.pul(&mc.S, &mc.U, postbyte)
		}
		if defn.Register == instructions.U && postbyte&registers.StackOther != 0 {
			mc.armNMI()
		}
	}
}

// the value of a register in the TFR and EXG instructions. eight bit registers
// read as sixteen bit values have the high byte set. invalid registers read
// as 0xffff.
func (mc *CPU) getReg(c registers.Code) uint16 {
	switch c {
	case registers.CodeD:
		return mc.D()
	case registers.CodeX:
		return mc.X
	case registers.CodeY:
		return mc.Y
	case registers.CodeU:
		return mc.U
	case registers.CodeS:
		return mc.S
	case registers.CodePC:
		return mc.PC
	case registers.CodeA:
		return 0xff00 | uint16(mc.A)
	case registers.CodeB:
		return 0xff00 | uint16(mc.B)
	case registers.CodeCC:
		return 0xff00 | uint16(mc.CC)
	case registers.CodeDP:
		return 0xff00 | uint16(mc.DP)
	}
	return 0xffff
}

// writes to invalid registers are ignored.
func (mc *CPU) setReg(c registers.Code, v uint16) {
	switch c {
	case registers.CodeD:
		mc.SetD(v)
	case registers.CodeX:
		mc.X = v
	case registers.CodeY:
		mc.Y = v
	case registers.CodeU:
		mc.U = v
	case registers.CodeS:
		mc.S = v
		mc.armNMI()
	case registers.CodePC:
		mc.PC = v
	case registers.CodeA:
		mc.A = uint8(v)
	case registers.CodeB:
		mc.B = uint8(v)
	case registers.CodeCC:
		mc.CC = registers.CC(v)
	case registers.CodeDP:
		mc.DP = uint8(v)
	}
}

// push registers in the postbyte to the stack. other is the value of the
// stack pointer that isn't being pushed to.
func (mc *CPU) psh(sp *uint16, other uint16, postbyte uint8) {
	mc.dead(2)
	mc.read(*sp)

	if postbyte&registers.StackPC != 0 {
		mc.push16(sp, mc.PC)
		mc.extra += 2
	}
	if postbyte&registers.StackOther != 0 {
		mc.push16(sp, other)
		mc.extra += 2
	}
	if postbyte&registers.StackY != 0 {
		mc.push16(sp, mc.Y)
		mc.extra += 2
	}
	if postbyte&registers.StackX != 0 {
		mc.push16(sp, mc.X)
		mc.extra += 2
	}
	if postbyte&registers.StackDP != 0 {
		mc.push8(sp, mc.DP)
		mc.extra++
	}
	if postbyte&registers.StackB != 0 {
		mc.push8(sp, mc.B)
		mc.extra++
	}
	if postbyte&registers.StackA != 0 {
		mc.push8(sp, mc.A)
		mc.extra++
	}
	if postbyte&registers.StackCC != 0 {
		mc.push8(sp, uint8(mc.CC))
		mc.extra++
	}
}

// pull registers in the postbyte from the stack. other is the stack pointer
// that isn't being pulled from.
func (mc *CPU) pul(sp *uint16, other *uint16, postbyte uint8) {
	mc.dead(2)

	if postbyte&registers.StackCC != 0 {
		mc.CC = registers.CC(mc.pull8(sp))
		mc.extra++
	}
	if postbyte&registers.StackA != 0 {
		mc.A = mc.pull8(sp)
		mc.extra++
	}
	if postbyte&registers.StackB != 0 {
		mc.B = mc.pull8(sp)
		mc.extra++
	}
	if postbyte&registers.StackDP != 0 {
		mc.DP = mc.pull8(sp)
		mc.extra++
	}
	if postbyte&registers.StackX != 0 {
		mc.X = mc.pull16(sp)
		mc.extra += 2
	}
	if postbyte&registers.StackY != 0 {
		mc.Y = mc.pull16(sp)
		mc.extra += 2
	}
	if postbyte&registers.StackOther != 0 {
		*other = mc.pull16(sp)
		mc.extra += 2
	}
	if postbyte&registers.StackPC != 0 {
		mc.PC = mc.pull16(sp)
		mc.extra += 2
	}

	mc.read(*sp)
}
