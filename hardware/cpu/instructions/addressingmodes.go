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

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Inherent AddressingMode = iota
	Immediate
	Direct
	Extended
	Indexed
	Relative     // eight bit signed offset
	RelativeLong // sixteen bit offset
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Immediate:
		return "Immediate"
	case Direct:
		return "Direct"
	case Extended:
		return "Extended"
	case Indexed:
		return "Indexed"
	case Relative:
		return "Relative"
	case RelativeLong:
		return "RelativeLong"
	}
	return "unknown addressing mode"
}

// Register is the register operand of an instruction.
type Register int

// List of register operands. The register operand of the PSH and PUL
// operators is the stack being used.
const (
	NoRegister Register = iota
	A
	B
	D
	X
	Y
	U
	S
)

func (r Register) String() string {
	switch r {
	case A:
		return "A"
	case B:
		return "B"
	case D:
		return "D"
	case X:
		return "X"
	case Y:
		return "Y"
	case U:
		return "U"
	case S:
		return "S"
	}
	return ""
}

// Is16Bit returns true if the register is sixteen bits wide.
func (r Register) Is16Bit() bool {
	return r >= D
}

// Condition is the test made by a conditional branch instruction.
type Condition int

// List of branch conditions. The values match the low nibble of the branch
// opcodes.
const (
	Always Condition = iota
	Never
	Higher
	LowerSame
	CarryClear
	CarrySet
	NotEqual
	Equal
	OverflowClear
	OverflowSet
	Plus
	Minus
	GreaterEqual
	Less
	Greater
	LessEqual
)
