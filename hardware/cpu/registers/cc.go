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

import "strings"

// CC is the condition code register of the 6809.
type CC uint8

// Bits in the condition code register.
const (
	Carry      CC = 0x01
	Overflow   CC = 0x02
	Zero       CC = 0x04
	Negative   CC = 0x08
	IRQMask    CC = 0x10
	HalfCarry  CC = 0x20
	FIRQMask   CC = 0x40
	EntireFlag CC = 0x80
)

// the letters used in the String() function, most significant bit first.
const ccLetters = "EFHINZVC"

// Label returns the canonical name of the register.
func (cc CC) Label() string {
	return "CC"
}

// String returns the condition code register as a string of letters. Upper
// case letters indicate a set bit, lower case a clear bit.
func (cc CC) String() string {
	s := strings.Builder{}
	for i, l := range ccLetters {
		if cc&(0x80>>i) != 0 {
			s.WriteRune(l)
		} else {
			s.WriteRune(l + ('a' - 'A'))
		}
	}
	return s.String()
}

// Is returns true if all bits in the flags argument are set.
func (cc CC) Is(flags CC) bool {
	return cc&flags == flags
}

// Set or clear the bits in the flags argument.
func (cc *CC) Set(flags CC, v bool) {
	if v {
		*cc |= flags
	} else {
		*cc &^= flags
	}
}
