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

// indexed decodes the indexed mode postbyte and returns the effective address.
// the number of cycles taken over the simplest form (",R") is added to the
// extra cycles for the instruction.
func (mc *CPU) indexed() uint16 {
	start := mc.used
	defer func() {
		mc.extra += mc.used - start - 2
	}()

	postbyte := mc.fetch8()

	var reg *uint16
	switch (postbyte >> 5) & 0x03 {
	case 0:
		reg = &mc.X
	case 1:
		reg = &mc.Y
	case 2:
		reg = &mc.U
	case 3:
		reg = &mc.S
	}

	// five bit signed offset. bit 4 is the sign bit and not the indirect bit
	if postbyte&0x80 == 0 {
		offset := uint16(postbyte & 0x1f)
		if offset&0x10 != 0 {
			offset |= 0xffe0
		}
		mc.dummyRead()
		mc.dead(1)
		return *reg + offset
	}

	var ea uint16

	switch postbyte & 0x0f {
	case 0x00: // ,R+
		ea = *reg
		*reg++
		mc.dummyRead()
		mc.dead(2)
	case 0x01: // ,R++
		ea = *reg
		*reg += 2
		mc.dummyRead()
		mc.dead(3)
	case 0x02: // ,-R
		*reg--
		ea = *reg
		mc.dummyRead()
		mc.dead(2)
	case 0x03: // ,--R
		*reg -= 2
		ea = *reg
		mc.dummyRead()
		mc.dead(3)
	case 0x04: // ,R
		ea = *reg
		mc.dummyRead()
	case 0x05: // B,R
		ea = *reg + sex8(mc.B)
		mc.dummyRead()
		mc.dead(1)
	case 0x06, 0x07: // A,R (0x07 is undocumented)
		ea = *reg + sex8(mc.A)
		mc.dummyRead()
		mc.dead(1)
	case 0x08: // n8,R
		ea = *reg + sex8(mc.fetch8())
		mc.dead(1)
	case 0x09: // n16,R
		ea = *reg + mc.fetch16()
		mc.dead(3)
	case 0x0a: // undocumented
		ea = mc.PC | 0x00ff
		mc.dummyRead()
		mc.dead(1)
	case 0x0b: // D,R
		ea = *reg + mc.D()
		mc.dummyRead()
		mc.read(mc.PC + 1)
		mc.dead(3)
	case 0x0c: // n8,PCR
		offset := sex8(mc.fetch8())
		ea = mc.PC + offset
		mc.dead(1)
	case 0x0d: // n16,PCR
		offset := mc.fetch16()
		ea = mc.PC + offset
		mc.dummyRead()
		mc.dead(3)
	case 0x0e: // undocumented
		ea = 0xffff
		mc.dummyRead()
		mc.dead(3)
	case 0x0f: // [n16]. the non-indirect form is undocumented
		ea = mc.fetch16()
		mc.dead(1)
	}

	if postbyte&0x10 != 0 {
		ea = mc.read16(ea)
		mc.dead(1)
	}

	return ea
}
