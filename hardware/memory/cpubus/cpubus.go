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

// Package cpubus defines the interface between the CPU and the rest of the
// machine. Every bus cycle of the CPU is one call to a function in the Bus
// interface.
package cpubus

// Bus defines the operations for the memory system when accessed from the
// CPU. The implementation is responsible for advancing time by the correct
// amount for each cycle.
//
// There are no error returns. Every address is valid and reads from
// unconnected addresses return whatever the implementation decides is on the
// data bus.
type Bus interface {
	// Read is one read cycle
	Read(address uint16) uint8

	// Write is one write cycle
	Write(address uint16, data uint8)

	// DeadCycles is n cycles in which the CPU does not access memory. On the
	// 6809 this is a "non valid memory address" cycle, with the address bus
	// reading $ffff
	DeadCycles(n int)
}

// Peeker is implemented by memory systems that allow side-effect free access.
// Peeks do not advance time. Used by debuggers and tracers.
type Peeker interface {
	Peek(address uint16) uint8
}

// Poker is implemented by memory systems that allow side-effect free writes.
type Poker interface {
	Poke(address uint16, data uint8)
}
