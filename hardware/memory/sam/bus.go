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

// cycle charges the cost of one bus cycle and runs any machine events that
// are now due
func (sam *SAM) cycle(area Area) {
	sam.sched.Advance(sam.cost(area))
	sam.sched.Machine.RunDue()
}

// Read implements the cpubus.Bus interface.
func (sam *SAM) Read(address uint16) uint8 {
	area := sam.Classify(address)
	sam.cycle(area)
	return sam.read(address, area, false)
}

// Write implements the cpubus.Bus interface.
func (sam *SAM) Write(address uint16, data uint8) {
	area := sam.Classify(address)
	sam.cycle(area)

	switch area {
	case RAM:
		// the upper half of the memory map is not backed by RAM on machines
		// with 32K or less. the RAM that does respond is written with the
		// ROM data, not the CPU data
		if sam.mapType1 && int(address) >= sam.ceiling() {
			data = sam.readROM(address, classifyROM(address))
		}
		sam.RAM[sam.translate(address)] = data
	case PIA0:
		if sam.PIA0 != nil {
			sam.PIA0.Write(uint8(address&0x03), data)
		}
	case PIA1:
		if sam.PIA1 != nil {
			sam.PIA1.Write(uint8(address&0x03), data)
		}
	case CartridgeIO:
		if sam.CartIO != nil {
			sam.CartIO.Write(uint8(address&0x1f), data)
		}
	case Registers:
		sam.writeRegister(address)
	}
}

// DeadCycles implements the cpubus.Bus interface. The address bus reads $ffff
// during a dead cycle.
func (sam *SAM) DeadCycles(n int) {
	for i := 0; i < n; i++ {
		sam.cycle(Vectors)
	}
}

// Peek implements the cpubus.Peeker interface.
func (sam *SAM) Peek(address uint16) uint8 {
	return sam.read(address, sam.Classify(address), true)
}

// Poke implements the cpubus.Poker interface. Pokes to ROM areas change the
// ROM data. Pokes to peripherals and the SAM registers are ignored.
func (sam *SAM) Poke(address uint16, data uint8) {
	area := sam.Classify(address)
	switch area {
	case RAM:
		sam.RAM[sam.translate(address)] = data
	case ROM0, ROM1, Vectors:
		if len(sam.ROM) > 0 {
			sam.ROM[sam.romOffset(address, area)] = data
		}
	case Cartridge:
		if len(sam.Cart) > 0 {
			sam.Cart[int(address-0xc000)%len(sam.Cart)] = data
		}
	}
}

func (sam *SAM) read(address uint16, area Area, peek bool) uint8 {
	switch area {
	case RAM:
		if sam.mapType1 && int(address) >= sam.ceiling() {
			return sam.readROM(address, classifyROM(address))
		}
		return sam.RAM[sam.translate(address)]
	case ROM0, ROM1, Cartridge, Vectors:
		return sam.readROM(address, area)
	case PIA0:
		return readDevice(sam.PIA0, uint8(address&0x03), peek)
	case PIA1:
		return readDevice(sam.PIA1, uint8(address&0x03), peek)
	case CartridgeIO:
		return readDevice(sam.CartIO, uint8(address&0x1f), peek)
	}

	// nothing drives the data bus
	return 0xff
}

func readDevice(dev Device, reg uint8, peek bool) uint8 {
	if dev == nil {
		return 0xff
	}
	if peek {
		return dev.Peek(reg)
	}
	return dev.Read(reg)
}

func (sam *SAM) readROM(address uint16, area Area) uint8 {
	if area == Cartridge {
		if len(sam.Cart) == 0 {
			return 0xff
		}
		return sam.Cart[int(address-0xc000)%len(sam.Cart)]
	}
	if len(sam.ROM) == 0 {
		return 0xff
	}
	return sam.ROM[sam.romOffset(address, area)]
}

// the vectors are the top 32 bytes of the ROM1 area
func (sam *SAM) romOffset(address uint16, area Area) int {
	if area == Vectors {
		address = 0xbfe0 | address&0x1f
	}
	offset := int(address - 0x8000)
	if len(sam.ROM) > 0x4000 {
		offset += sam.romBank * 0x4000
	}
	return offset % len(sam.ROM)
}
