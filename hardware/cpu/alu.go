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

import "github.com/jetsetilly/gopherdragon/hardware/cpu/registers"

const (
	flagsNZ   = registers.Negative | registers.Zero
	flagsNZV  = flagsNZ | registers.Overflow
	flagsNZVC = flagsNZV | registers.Carry
)

func (mc *CPU) setNZ8(r uint8) {
	if r == 0 {
		mc.CC |= registers.Zero
	}
	if r&0x80 != 0 {
		mc.CC |= registers.Negative
	}
}

func (mc *CPU) setNZ16(r uint16) {
	if r == 0 {
		mc.CC |= registers.Zero
	}
	if r&0x8000 != 0 {
		mc.CC |= registers.Negative
	}
}

func (mc *CPU) carry() uint8 {
	return uint8(mc.CC & registers.Carry)
}

// overflow is the carry into the most significant bit exclusive-or'd with the
// carry out of it. r is the result of the operation before truncation.
func overflow8(a, b uint8, r uint16) bool {
	return (uint16(a)^uint16(b)^r^(r>>1))&0x80 != 0
}

func overflow16(a, b uint16, r uint32) bool {
	return (uint32(a)^uint32(b)^r^(r>>1))&0x8000 != 0
}

func (mc *CPU) sub8(a, b, carry uint8) uint8 {
	r := uint16(a) - uint16(b) - uint16(carry)
	mc.CC &^= flagsNZVC
	mc.setNZ8(uint8(r))
	mc.CC.Set(registers.Overflow, overflow8(a, b, r))
	mc.CC.Set(registers.Carry, r&0x100 != 0)
	return uint8(r)
}

func (mc *CPU) add8(a, b, carry uint8) uint8 {
	r := uint16(a) + uint16(b) + uint16(carry)
	mc.CC &^= flagsNZVC | registers.HalfCarry
	mc.setNZ8(uint8(r))
	mc.CC.Set(registers.HalfCarry, (uint16(a)^uint16(b)^r)&0x10 != 0)
	mc.CC.Set(registers.Overflow, overflow8(a, b, r))
	mc.CC.Set(registers.Carry, r&0x100 != 0)
	return uint8(r)
}

func (mc *CPU) sub16(a, b uint16) uint16 {
	r := uint32(a) - uint32(b)
	mc.CC &^= flagsNZVC
	mc.setNZ16(uint16(r))
	mc.CC.Set(registers.Overflow, overflow16(a, b, r))
	mc.CC.Set(registers.Carry, r&0x10000 != 0)
	return uint16(r)
}

func (mc *CPU) add16(a, b uint16) uint16 {
	r := uint32(a) + uint32(b)
	mc.CC &^= flagsNZVC
	mc.setNZ16(uint16(r))
	mc.CC.Set(registers.Overflow, overflow16(a, b, r))
	mc.CC.Set(registers.Carry, r&0x10000 != 0)
	return uint16(r)
}

// logical operations and loads/stores clear V.
func (mc *CPU) logic8(r uint8) uint8 {
	mc.CC &^= flagsNZV
	mc.setNZ8(r)
	return r
}

func (mc *CPU) logic16(r uint16) uint16 {
	mc.CC &^= flagsNZV
	mc.setNZ16(r)
	return r
}

func (mc *CPU) neg(v uint8) uint8 {
	return mc.sub8(0, v, 0)
}

func (mc *CPU) com(v uint8) uint8 {
	r := mc.logic8(^v)
	mc.CC |= registers.Carry
	return r
}

func (mc *CPU) lsr(v uint8) uint8 {
	r := v >> 1
	mc.CC &^= flagsNZ | registers.Carry
	mc.setNZ8(r)
	mc.CC.Set(registers.Carry, v&0x01 != 0)
	return r
}

func (mc *CPU) ror(v uint8) uint8 {
	r := v>>1 | mc.carry()<<7
	mc.CC &^= flagsNZ | registers.Carry
	mc.setNZ8(r)
	mc.CC.Set(registers.Carry, v&0x01 != 0)
	return r
}

func (mc *CPU) asr(v uint8) uint8 {
	r := v>>1 | v&0x80
	mc.CC &^= flagsNZ | registers.Carry
	mc.setNZ8(r)
	mc.CC.Set(registers.Carry, v&0x01 != 0)
	return r
}

func (mc *CPU) asl(v uint8) uint8 {
	r := v << 1
	mc.CC &^= flagsNZVC
	mc.setNZ8(r)
	mc.CC.Set(registers.Overflow, (v^r)&0x80 != 0)
	mc.CC.Set(registers.Carry, v&0x80 != 0)
	return r
}

func (mc *CPU) rol(v uint8) uint8 {
	r := v<<1 | mc.carry()
	mc.CC &^= flagsNZVC
	mc.setNZ8(r)
	mc.CC.Set(registers.Overflow, (v^v<<1)&0x80 != 0)
	mc.CC.Set(registers.Carry, v&0x80 != 0)
	return r
}

func (mc *CPU) dec(v uint8) uint8 {
	r := v - 1
	mc.CC &^= flagsNZV
	mc.setNZ8(r)
	mc.CC.Set(registers.Overflow, v == 0x80)
	return r
}

func (mc *CPU) inc(v uint8) uint8 {
	r := v + 1
	mc.CC &^= flagsNZV
	mc.setNZ8(r)
	mc.CC.Set(registers.Overflow, v == 0x7f)
	return r
}

func (mc *CPU) clr() uint8 {
	mc.CC &^= flagsNZVC
	mc.CC |= registers.Zero
	return 0
}

// decimal adjust the A accumulator after an addition.
func (mc *CPU) daa() {
	var cf uint16
	msn := mc.A & 0xf0
	lsn := mc.A & 0x0f
	if lsn > 0x09 || mc.CC.Is(registers.HalfCarry) {
		cf |= 0x06
	}
	if msn > 0x80 && lsn > 0x09 {
		cf |= 0x60
	}
	if msn > 0x90 || mc.CC.Is(registers.Carry) {
		cf |= 0x60
	}
	r := uint16(mc.A) + cf
	mc.CC &^= flagsNZV
	mc.setNZ8(uint8(r))
	if r&0x100 != 0 {
		mc.CC |= registers.Carry
	}
	mc.A = uint8(r)
}

func (mc *CPU) mul() {
	r := uint16(mc.A) * uint16(mc.B)
	mc.SetD(r)
	mc.CC &^= registers.Zero | registers.Carry
	mc.CC.Set(registers.Zero, r == 0)
	mc.CC.Set(registers.Carry, r&0x80 != 0)
}

func (mc *CPU) sex() {
	if mc.B&0x80 != 0 {
		mc.A = 0xff
	} else {
		mc.A = 0
	}
	mc.CC &^= flagsNZ
	mc.setNZ16(mc.D())
}
