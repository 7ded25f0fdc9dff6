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
)

// Entry is a disassembled instruction.
type Entry struct {
	Address  uint16
	Bytecode []uint8

	// nil if the opcode is not recognised
	Defn *instructions.Definition

	Mnemonic string
	Operand  string
}

// Len returns the number of bytes in the instruction.
func (e Entry) Len() int {
	return len(e.Bytecode)
}

// Next returns the address of the instruction following this one.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytecode))
}

// GetField returns a single formatted field of the Entry.
func (e Entry) GetField(field Field) string {
	switch field {
	case FldAddress:
		return fmt.Sprintf("%04x", e.Address)
	case FldBytecode:
		s := make([]string, len(e.Bytecode))
		for i, b := range e.Bytecode {
			s[i] = fmt.Sprintf("%02x", b)
		}
		return fmt.Sprintf("%-14s", strings.Join(s, " "))
	case FldMnemonic:
		return fmt.Sprintf("%-6s", e.Mnemonic)
	case FldOperand:
		return e.Operand
	}
	return ""
}

func (e Entry) String() string {
	s := fmt.Sprintf("%s  %s %s %s", e.GetField(FldAddress), e.GetField(FldBytecode),
		e.GetField(FldMnemonic), e.GetField(FldOperand))
	return strings.TrimRight(s, " ")
}
