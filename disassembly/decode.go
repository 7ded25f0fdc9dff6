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
	"strings"

	"github.com/jetsetilly/gopherdragon/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherdragon/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdragon/hardware/memory/cpubus"
)

// Decode the instruction at the address. Prefix bytes are decoded in the same
// way as the CPU decodes them. Repeated prefixes do not change the page and
// an opcode that is not defined on page two or three is the page one
// instruction.
func Decode(mem cpubus.Peeker, address uint16) Entry {
	e := Entry{Address: address}

	a := address
	fetch := func() uint8 {
		b := mem.Peek(a)
		e.Bytecode = append(e.Bytecode, b)
		a++
		return b
	}

	page := 1
	opcode := fetch()
	for opcode == 0x10 || opcode == 0x11 {
		if page == 1 {
			page = 2 + int(opcode&0x01)
		}
		opcode = fetch()
	}

	defn := instructions.Lookup(page, opcode)
	if defn == nil {
		defn = instructions.Lookup(1, opcode)
	}
	if defn == nil {
		e.Mnemonic = "???"
		return e
	}

	e.Defn = defn
	e.Mnemonic = defn.Mnemonic

	fetch16 := func() uint16 {
		hi := fetch()
		lo := fetch()
		return uint16(hi)<<8 | uint16(lo)
	}

	switch defn.Mode {
	case instructions.Inherent:

	case instructions.Immediate:
		switch defn.Operator {
		case instructions.PSH, instructions.PUL:
			e.Operand = stackList(fetch(), defn.Register)
		case instructions.TFR, instructions.EXG:
			pb := fetch()
			e.Operand = fmt.Sprintf("%s,%s", registers.Code(pb>>4), registers.Code(pb&0x0f))
		default:
			if defn.Register.Is16Bit() {
				e.Operand = fmt.Sprintf("#$%04x", fetch16())
			} else {
				e.Operand = fmt.Sprintf("#$%02x", fetch())
			}
		}

	case instructions.Direct:
		e.Operand = fmt.Sprintf("<$%02x", fetch())

	case instructions.Extended:
		e.Operand = fmt.Sprintf("$%04x", fetch16())

	case instructions.Relative:
		offset := int8(fetch())
		e.Operand = fmt.Sprintf("$%04x", a+uint16(offset))

	case instructions.RelativeLong:
		offset := fetch16()
		e.Operand = fmt.Sprintf("$%04x", a+offset)

	case instructions.Indexed:
		e.Operand = indexed(fetch(), fetch, fetch16)
	}

	return e
}

var indexRegisters = [...]string{"X", "Y", "U", "S"}

// indexed returns the operand string for the indexed mode postbyte. any
// offset bytes are fetched with the supplied functions.
func indexed(pb uint8, fetch func() uint8, fetch16 func() uint16) string {
	reg := indexRegisters[(pb>>5)&0x03]

	// five bit signed offset
	if pb&0x80 == 0 {
		offset := int(pb & 0x1f)
		if offset&0x10 != 0 {
			offset -= 0x20
		}
		return fmt.Sprintf("%d,%s", offset, reg)
	}

	var s string
	switch pb & 0x0f {
	case 0x00:
		s = fmt.Sprintf(",%s+", reg)
	case 0x01:
		s = fmt.Sprintf(",%s++", reg)
	case 0x02:
		s = fmt.Sprintf(",-%s", reg)
	case 0x03:
		s = fmt.Sprintf(",--%s", reg)
	case 0x04:
		s = fmt.Sprintf(",%s", reg)
	case 0x05:
		s = fmt.Sprintf("B,%s", reg)
	case 0x06, 0x07:
		s = fmt.Sprintf("A,%s", reg)
	case 0x08:
		s = fmt.Sprintf("%d,%s", int8(fetch()), reg)
	case 0x09:
		s = fmt.Sprintf("$%04x,%s", fetch16(), reg)
	case 0x0a:
		s = "PC|$ff"
	case 0x0b:
		s = fmt.Sprintf("D,%s", reg)
	case 0x0c:
		s = fmt.Sprintf("%d,PCR", int8(fetch()))
	case 0x0d:
		s = fmt.Sprintf("$%04x,PCR", fetch16())
	case 0x0e:
		s = "$ffff"
	case 0x0f:
		s = fmt.Sprintf("$%04x", fetch16())
	}

	if pb&0x10 != 0 {
		return fmt.Sprintf("[%s]", s)
	}
	return s
}

// stackList returns the register list of a PSH or PUL instruction. The stack
// argument is the stack being used.
func stackList(pb uint8, stack instructions.Register) string {
	other := "U"
	if stack == instructions.U {
		other = "S"
	}

	var l []string
	if pb&registers.StackCC != 0 {
		l = append(l, "CC")
	}
	if pb&registers.StackA != 0 {
		l = append(l, "A")
	}
	if pb&registers.StackB != 0 {
		l = append(l, "B")
	}
	if pb&registers.StackDP != 0 {
		l = append(l, "DP")
	}
	if pb&registers.StackX != 0 {
		l = append(l, "X")
	}
	if pb&registers.StackY != 0 {
		l = append(l, "Y")
	}
	if pb&registers.StackOther != 0 {
		l = append(l, other)
	}
	if pb&registers.StackPC != 0 {
		l = append(l, "PC")
	}
	return strings.Join(l, ",")
}
