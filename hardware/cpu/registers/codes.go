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

package registers

// Code is the 4bit register encoding used by the TFR and EXG postbyte.
type Code uint8

// List of valid register codes. Codes 0x6, 0x7 and 0xc to 0xf are not valid.
const (
	CodeD  Code = 0x0
	CodeX  Code = 0x1
	CodeY  Code = 0x2
	CodeU  Code = 0x3
	CodeS  Code = 0x4
	CodePC Code = 0x5
	CodeA  Code = 0x8
	CodeB  Code = 0x9
	CodeCC Code = 0xa
	CodeDP Code = 0xb
)

// Is16Bit returns true if the code refers to a sixteen bit register. Invalid
// codes in the lower half are treated as sixteen bit.
func (c Code) Is16Bit() bool {
	return c&0x08 == 0
}

// Valid returns true if the code refers to a register.
func (c Code) Valid() bool {
	return c <= CodePC || (c >= CodeA && c <= CodeDP)
}

func (c Code) String() string {
	switch c {
	case CodeD:
		return "D"
	case CodeX:
		return "X"
	case CodeY:
		return "Y"
	case CodeU:
		return "U"
	case CodeS:
		return "S"
	case CodePC:
		return "PC"
	case CodeA:
		return "A"
	case CodeB:
		return "B"
	case CodeCC:
		return "CC"
	case CodeDP:
		return "DP"
	}
	return "?"
}

// Bits in the postbyte of the PSHx and PULx instructions. The bit for the
// "other" stack pointer is the same for both stacks.
const (
	StackCC    uint8 = 0x01
	StackA     uint8 = 0x02
	StackB     uint8 = 0x04
	StackDP    uint8 = 0x08
	StackX     uint8 = 0x10
	StackY     uint8 = 0x20
	StackOther uint8 = 0x40
	StackPC    uint8 = 0x80
)
