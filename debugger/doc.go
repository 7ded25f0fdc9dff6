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

// Package debugger is a simple single-stepping front end for the emulation.
// Commands are single key presses read from the input. When the input is a
// terminal it is put into cbreak mode so that key presses are acted on
// immediately.
//
//	s	step one instruction
//	c	continue to the end of the frame
//	b	go back to the start of the previous frame
//	r	show the registers
//	d	disassemble from the program counter
//	t	toggle instruction tracing
//	w	save a snapshot to the current directory
//	h	show help
//	q	quit
package debugger
