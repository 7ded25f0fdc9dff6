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

// Package hardware is the base package for the Dragon and CoCo emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// all the sub-systems. The emulation is driven by asking the machine to run
// for a number of master clock ticks, or for a number of frames, or by
// stepping the CPU one instruction at a time.
//
// Everything the machine does outside of the CPU happens in callbacks from
// the event scheduler. Video timing, audio sampling and the cartridge
// interrupt are all periodic events in the machine queue.
package hardware
