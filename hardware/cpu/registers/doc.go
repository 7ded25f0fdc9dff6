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

// Package registers contains the types for the 6809 condition code register
// and the register encoding used by the TFR, EXG, PSHx and PULx
// instructions.
//
// The accumulators, index registers, stack pointers and program counter are
// plain integer fields of the CPU type. Only the condition code register has
// enough structure to warrant its own type.
package registers
