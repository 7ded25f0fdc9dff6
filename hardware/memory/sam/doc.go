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

// Package sam implements the MC6883 synchronous address multiplexer. Every bus
// cycle made by the CPU passes through the SAM. The SAM decides which device
// responds to the address, translates RAM addresses to physical DRAM
// locations, charges the cycle cost to the master clock and runs any machine
// events that have become due.
//
// The SAM also provides the byte stream used by the video timing. The video
// address counter shares the RAM translation with the CPU.
package sam
