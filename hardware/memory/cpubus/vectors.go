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

package cpubus

// Interrupt vectors. Each vector is the address of the most significant byte
// of the 16bit address of the handler.
const (
	VectorSWI3  = uint16(0xfff2)
	VectorSWI2  = uint16(0xfff4)
	VectorFIRQ  = uint16(0xfff6)
	VectorIRQ   = uint16(0xfff8)
	VectorSWI   = uint16(0xfffa)
	VectorNMI   = uint16(0xfffc)
	VectorReset = uint16(0xfffe)
)

// VectorName returns the conventional name of the vector.
func VectorName(vector uint16) string {
	switch vector {
	case VectorSWI3:
		return "SWI3"
	case VectorSWI2:
		return "SWI2"
	case VectorFIRQ:
		return "FIRQ"
	case VectorIRQ:
		return "IRQ"
	case VectorSWI:
		return "SWI"
	case VectorNMI:
		return "NMI"
	case VectorReset:
		return "RESET"
	}
	return "unknown vector"
}
