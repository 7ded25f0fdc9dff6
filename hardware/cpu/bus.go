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

// every bus cycle is accounted for here
func (mc *CPU) tick(n int) {
	mc.BusCycles += uint64(n)
	mc.used += n
	mc.sampleNMI()
}

func (mc *CPU) read(address uint16) uint8 {
	v := mc.bus.Read(address)
	mc.tick(1)
	return v
}

func (mc *CPU) read16(address uint16) uint16 {
	hi := mc.read(address)
	lo := mc.read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write(address uint16, data uint8) {
	mc.bus.Write(address, data)
	mc.tick(1)
}

func (mc *CPU) write16(address uint16, data uint16) {
	mc.write(address, uint8(data>>8))
	mc.write(address+1, uint8(data))
}

func (mc *CPU) dead(n int) {
	if n <= 0 {
		return
	}
	mc.bus.DeadCycles(n)
	mc.tick(n)
}

// read the byte at PC without advancing PC. the 6809 makes these reads while
// decoding inherent instructions
func (mc *CPU) dummyRead() {
	mc.read(mc.PC)
}

func (mc *CPU) fetch8() uint8 {
	v := mc.read(mc.PC)
	mc.PC++
	return v
}

func (mc *CPU) fetch16() uint16 {
	v := mc.read16(mc.PC)
	mc.PC += 2
	return v
}

func (mc *CPU) push8(sp *uint16, data uint8) {
	*sp--
	mc.write(*sp, data)
}

func (mc *CPU) push16(sp *uint16, data uint16) {
	mc.push8(sp, uint8(data))
	mc.push8(sp, uint8(data>>8))
}

func (mc *CPU) pull8(sp *uint16) uint8 {
	v := mc.read(*sp)
	*sp++
	return v
}

func (mc *CPU) pull16(sp *uint16) uint16 {
	hi := mc.pull8(sp)
	lo := mc.pull8(sp)
	return uint16(hi)<<8 | uint16(lo)
}

func sex8(v uint8) uint16 {
	return uint16(int16(int8(v)))
}
