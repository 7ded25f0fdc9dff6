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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode
// per page.
type Definition struct {
	Opcode    uint8
	Page      int
	Mnemonic  string
	Mode      AddressingMode
	Operator  Operator
	Register  Register
	Condition Condition

	// the number of cycles taken by the instruction, including any prefix
	// byte. for indexed instructions this is the cycle count for the ",R"
	// form and the indexing mode adds to it. instructions with a variable
	// number of cycles (PSH, PUL, RTI and the long conditional branches)
	// list the minimum
	Cycles int

	// undocumented opcodes that alias a documented operation or that have
	// no documented equivalent
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s page=%d (%d cycles) [mode=%s]", defn.Opcode, defn.Mnemonic, defn.Page, defn.Cycles, defn.Mode)
}

// Bytes returns the number of bytes in the instruction, including the opcode
// and any prefix byte. Indexed instructions may be followed by one or two
// more bytes depending on the postbyte. See IndexedBytes().
func (defn Definition) Bytes() int {
	n := 1
	if defn.Page > 1 {
		n++
	}

	switch defn.Mode {
	case Immediate:
		if defn.Register.Is16Bit() && defn.Operator != PSH && defn.Operator != PUL {
			return n + 2
		}
		return n + 1
	case Direct, Indexed, Relative:
		return n + 1
	case Extended, RelativeLong:
		return n + 2
	}
	return n
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.Operator == Branch
}

// IndexedBytes returns the number of bytes that follow an indexed mode
// postbyte.
func IndexedBytes(postbyte uint8) int {
	if postbyte&0x80 == 0 {
		return 0
	}
	switch postbyte & 0x0f {
	case 0x08, 0x0c:
		return 1
	case 0x09, 0x0d, 0x0f:
		return 2
	}
	return 0
}

// Lookup returns the definition for an opcode on the specified page. Returns
// nil if the opcode is not defined on pages two or three.
func Lookup(page int, opcode uint8) *Definition {
	var defn *Definition
	switch page {
	case 1:
		defn = &page1[opcode]
	case 2:
		defn = &page2[opcode]
	case 3:
		defn = &page3[opcode]
	default:
		return nil
	}
	if defn.Mnemonic == "" {
		return nil
	}
	return defn
}

func init() {
	for i := range page1 {
		page1[i].Opcode = uint8(i)
		page1[i].Page = 1
		page2[i].Opcode = uint8(i)
		page2[i].Page = 2
		page3[i].Opcode = uint8(i)
		page3[i].Page = 3

		// conditional branches take the condition from the low nibble of
		// the opcode. LBRA is outside this range and is always taken
		if i&0xf0 == 0x20 {
			page1[i].Condition = Condition(i & 0x0f)
			page2[i].Condition = Condition(i & 0x0f)
		}
	}
}
