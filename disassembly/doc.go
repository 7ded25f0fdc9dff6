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

// Package disassembly decodes 6809 machine code into a human readable form.
// Memory is read with the side-effect free Peek() function so disassembling
// never changes the state of the emulation.
//
// The Tracer type uses the hooks of the CPU to print every instruction as it
// is executed, along with the state of the registers before execution.
package disassembly
