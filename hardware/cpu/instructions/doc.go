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

// Package instructions defines the opcode tables for the 6809. Each opcode on
// each of the three opcode pages is described by a Definition: the addressing
// mode, the operation to perform, the register operand (if any) and the base
// number of cycles.
//
// The CPU package uses a single generic dispatch routine over these
// definitions. The disassembler in the tracer package uses the same tables.
//
// Page one is complete. Every one of the 256 opcodes has a definition,
// including the undocumented opcodes that alias a documented operation. Pages
// two and three only contain the documented opcodes. Opcodes missing from
// those pages are executed as the page one opcode of the same value.
package instructions
