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

import (
	"fmt"

	"github.com/jetsetilly/gopherdragon/hardware/clocks"
	"github.com/jetsetilly/gopherdragon/hardware/future"
)

// Device is implemented by the peripherals that occupy a register window in
// the memory map. The register argument is the address with the window
// origin removed.
type Device interface {
	Read(reg uint8) uint8
	Write(reg uint8, data uint8)

	// Peek is a read without side effects
	Peek(reg uint8) uint8
}

// Field masks in the SAM register.
const (
	maskV  = 0x0007
	maskF  = 0x03f8
	maskP1 = 0x0400
	maskR  = 0x1800
	maskM  = 0x6000
	maskTY = 0x8000
)

// Memory size modes selected by the M field.
const (
	Mode4K  = 0
	Mode16K = 1
	Mode64K = 2
)

// ValidRAMSize returns true if the number of bytes can be installed in a
// machine.
func ValidRAMSize(size int) bool {
	_, _, ok := geometry(size)
	return ok
}

// the number of address bits per DRAM chip and the number of banks for an
// amount of installed RAM
func geometry(size int) (uint, int, bool) {
	switch size {
	case 0x1000:
		return 6, 1, true
	case 0x4000:
		return 7, 1, true
	case 0x8000:
		return 7, 2, true
	case 0x10000:
		return 8, 1, true
	}
	return 0, 0, false
}

// SAM implements the MC6883 and the cpubus.Bus interface.
type SAM struct {
	sched *future.Scheduler

	reg uint16

	// RAM is the physical DRAM. the size must be one of the values accepted
	// by ValidRAMSize()
	RAM []uint8

	// ROM is the BASIC ROM. 16K, or 32K for a machine with two banks of ROM
	ROM []uint8

	// Cart is the cartridge ROM. nil if no cartridge is inserted
	Cart []uint8

	PIA0   Device
	PIA1   Device
	CartIO Device

	// selected bank of a 32K ROM
	romBank int

	// installed DRAM geometry
	chipBits uint
	banks    int

	// derived from the SAM register
	rowBits  uint
	bankBit  int
	page1    bool
	mapType1 bool
	rate     uint8

	video video
}

// NewSAM is the preferred method of initialisation for the SAM type. The RAM
// slice must have a length accepted by ValidRAMSize().
func NewSAM(sched *future.Scheduler, ram []uint8) *SAM {
	bits, banks, ok := geometry(len(ram))
	if !ok {
		panic(fmt.Sprintf("sam: unsupported RAM size (%d bytes)", len(ram)))
	}
	sam := &SAM{
		sched:    sched,
		RAM:      ram,
		chipBits: bits,
		banks:    banks,
	}
	sam.Reset()
	return sam
}

func (sam *SAM) String() string {
	return fmt.Sprintf("V=%d F=%02x P1=%d R=%d M=%d TY=%d", sam.reg&maskV, sam.VideoBase()>>9,
		(sam.reg&maskP1)>>10, sam.rate, (sam.reg&maskM)>>13, (sam.reg&maskTY)>>15)
}

// Reset clears the SAM register.
func (sam *SAM) Reset() {
	sam.reg = 0
	sam.update()
	sam.VideoReset()
}

// Register returns the value of the SAM register.
func (sam *SAM) Register() uint16 {
	return sam.reg
}

// SetRegister sets the entire SAM register.
func (sam *SAM) SetRegister(v uint16) {
	sam.reg = v
	sam.update()
}

// VideoMode is the V field of the SAM register.
func (sam *SAM) VideoMode() int {
	return int(sam.reg & maskV)
}

// VideoBase is the address the video counter is set to on field sync.
func (sam *SAM) VideoBase() uint16 {
	return (sam.reg & maskF) << 6
}

// MapType1 returns true if the SAM is in the all RAM map type.
func (sam *SAM) MapType1() bool {
	return sam.mapType1
}

// SelectROMBank selects which half of a 32K ROM appears in the ROM areas.
// Ignored for a 16K ROM.
func (sam *SAM) SelectROMBank(bank int) {
	sam.romBank = bank & 1
}

// writeRegister handles an access in the $ffc0 to $ffdf window
func (sam *SAM) writeRegister(address uint16) {
	offset := address - 0xffc0
	bit := uint16(1) << (offset >> 1)
	if offset&1 == 1 {
		sam.reg |= bit
	} else {
		sam.reg &^= bit
	}
	sam.update()
}

// update derived state from the SAM register
func (sam *SAM) update() {
	switch (sam.reg & maskM) >> 13 {
	case Mode4K:
		sam.rowBits = 6
		sam.bankBit = 12
	case Mode16K:
		sam.rowBits = 7
		sam.bankBit = 14
	default:
		sam.rowBits = 8
		sam.bankBit = -1
	}
	sam.page1 = sam.reg&maskP1 == maskP1
	sam.mapType1 = sam.reg&maskTY == maskTY
	sam.rate = uint8((sam.reg & maskR) >> 11)
}

// cost returns the number of master ticks for a bus cycle to the area
func (sam *SAM) cost(area Area) int {
	switch sam.rate {
	case 0:
		return clocks.SlowCycle
	case 1:
		// address dependent. RAM and the peripherals remain slow
		switch area {
		case RAM, PIA0, PIA1, CartridgeIO, Unmapped:
			return clocks.SlowCycle
		}
	}
	return clocks.FastCycle
}

// translate a CPU address to a physical RAM offset
func (sam *SAM) translate(address uint16) int {
	a := int(address)
	if sam.page1 && !sam.mapType1 && sam.rowBits == 8 && a < 0x8000 {
		a |= 0x8000
	}
	return sam.ramOffset(a)
}

// the row and column are taken from the address according to the memory size
// mode. the installed chips only see as many of those lines as they have
func (sam *SAM) ramOffset(a int) int {
	mask := 1<<sam.rowBits - 1
	row := a & mask
	col := (a >> sam.rowBits) & mask

	bank := 0
	if sam.bankBit >= 0 {
		bank = (a >> sam.bankBit) & 1
	}
	bank %= sam.banks

	chip := 1<<sam.chipBits - 1
	return bank<<(2*sam.chipBits) | (col&chip)<<sam.chipBits | (row & chip)
}

// the RAM ceiling is the highest CPU address (plus one) that can be backed
// by the installed RAM without mirroring
func (sam *SAM) ceiling() int {
	if len(sam.RAM) > 0x8000 {
		return 0xff00
	}
	return 0x8000
}
