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

// Package cpu emulates the 6809 CPU found in the Dragon and Tandy Colour
// Computer. The CPU is the only thing that drives the bus. Every bus cycle is
// a call to one of the functions in the cpubus.Bus interface and it is the
// implementation of that interface that advances time.
//
// The CPU is a state machine. Each call to Step() performs one of: a check
// of the HALT line, a check for (and dispatch of) a pending interrupt, or the
// fetch and execution of an instruction. The Run() function calls Step()
// until the Running field is cleared. Usually this happens in an event
// callback that is triggered while the CPU is accessing the bus.
//
// Instructions are decoded through the tables in the instructions package.
// The number of cycles taken by each instruction is the number of bus cycles
// the CPU makes. Undocumented opcodes are emulated as they behave on real
// silicon, including the three opcodes that lock the CPU in the "halt and
// catch fire" state.
//
// Interrupts are prioritised NMI, FIRQ, IRQ. NMI is edge triggered and is
// ignored until the S register has been written to for the first time after
// a reset.
package cpu
