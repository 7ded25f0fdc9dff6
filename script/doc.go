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

// Package script runs Lua scripts that control the emulation. Scripts are
// useful for automating a run of the machine, for example typing a command
// and checking the contents of memory afterwards.
//
// The following functions are available to the script in addition to the
// standard Lua libraries:
//
//	peek(address)           returns the byte at the address
//	poke(address, value)    writes a byte to the address
//	step([n])               steps n instructions (default 1)
//	run(ticks)              runs the machine for a number of master clock ticks
//	frames(n)               runs the machine for a number of frames
//	reg(name [, value])     returns (or sets) a CPU register
//	press(key)              presses a key
//	release([key])          releases a key or all keys if no key is given
//	joystick(n, x, y [, fire])  positions joystick 0 or 1. axes are 0 to 63
//	trace(on)               turns instruction tracing on or off
//
// The print() function writes to the output of the script.
package script
