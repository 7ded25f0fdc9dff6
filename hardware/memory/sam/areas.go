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

package sam

// Area identifies the device that responds to an address.
type Area int

// List of valid Area values.
const (
	RAM Area = iota
	ROM0
	ROM1
	Cartridge
	PIA0
	PIA1
	CartridgeIO
	Unmapped
	Registers
	Vectors
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ROM0:
		return "ROM0"
	case ROM1:
		return "ROM1"
	case Cartridge:
		return "Cartridge"
	case PIA0:
		return "PIA0"
	case PIA1:
		return "PIA1"
	case CartridgeIO:
		return "Cartridge IO"
	case Unmapped:
		return "Unmapped"
	case Registers:
		return "SAM"
	case Vectors:
		return "Vectors"
	}
	return "unknown area"
}

// Classify returns the Area for an address in the current memory map.
func (sam *SAM) Classify(address uint16) Area {
	if address < 0x8000 {
		return RAM
	}
	if address < 0xff00 {
		if sam.mapType1 {
			return RAM
		}
		switch {
		case address < 0xa000:
			return ROM0
		case address < 0xc000:
			return ROM1
		}
		return Cartridge
	}
	switch {
	case address < 0xff20:
		return PIA0
	case address < 0xff40:
		return PIA1
	case address < 0xff60:
		return CartridgeIO
	case address < 0xffc0:
		return Unmapped
	case address < 0xffe0:
		return Registers
	}
	return Vectors
}

// classify ignoring the map type. used when the upper half of RAM is missing
func classifyROM(address uint16) Area {
	switch {
	case address < 0xa000:
		return ROM0
	case address < 0xc000:
		return ROM1
	}
	return Cartridge
}
