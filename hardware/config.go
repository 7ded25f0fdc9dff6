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

package hardware

import (
	"strings"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/hardware/memory/sam"
)

// Architecture is the model of machine being emulated.
type Architecture int

// List of valid Architecture values.
const (
	Dragon32 Architecture = iota
	Dragon64
	CoCo
)

func (arch Architecture) String() string {
	switch arch {
	case Dragon32:
		return "Dragon 32"
	case Dragon64:
		return "Dragon 64"
	case CoCo:
		return "CoCo"
	}
	return "unknown architecture"
}

// ParseArchitecture returns the Architecture named by the string. Case is
// ignored and spaces are optional.
func ParseArchitecture(s string) (Architecture, error) {
	switch strings.ReplaceAll(strings.ToLower(s), " ", "") {
	case "dragon32", "d32":
		return Dragon32, nil
	case "dragon64", "d64":
		return Dragon64, nil
	case "coco":
		return CoCo, nil
	}
	return Dragon32, curated.Errorf("machine: unknown architecture (%s)", s)
}

// Config specifies the machine to be created by NewMachine().
type Config struct {
	Arch Architecture

	// number of bytes of RAM installed
	RAM int

	// PAL machines have more lines per frame and a slightly slower master
	// clock
	PAL bool

	// the BASIC ROM. a Dragon 64 has two banks of ROM in a single 32K image
	ROM []uint8

	// cartridge ROM. nil if there is no cartridge
	Cartridge []uint8

	// pulse the cartridge interrupt line. the cartridge will be started by
	// BASIC
	AutoStart bool
}

// DefaultConfig returns the usual configuration for the architecture.
func DefaultConfig(arch Architecture) Config {
	switch arch {
	case Dragon64:
		return Config{Arch: arch, RAM: 0x10000, PAL: true}
	case CoCo:
		return Config{Arch: arch, RAM: 0x10000}
	}
	return Config{Arch: Dragon32, RAM: 0x8000, PAL: true}
}

func (cfg Config) validate() error {
	switch cfg.Arch {
	case Dragon32, CoCo:
	case Dragon64:
		if cfg.RAM != 0x10000 {
			return curated.Errorf("machine: %s must have 64K of RAM", cfg.Arch)
		}
	default:
		return curated.Errorf("machine: unknown architecture (%d)", cfg.Arch)
	}

	if !sam.ValidRAMSize(cfg.RAM) {
		return curated.Errorf("machine: unsupported RAM size (%d bytes)", cfg.RAM)
	}

	switch len(cfg.ROM) {
	case 0, 0x2000, 0x4000:
	case 0x8000:
		if cfg.Arch != Dragon64 {
			return curated.Errorf("machine: 32K ROM is only supported by the %s", Dragon64)
		}
	default:
		return curated.Errorf("machine: unsupported ROM size (%d bytes)", len(cfg.ROM))
	}

	if len(cfg.Cartridge) > 0x4000 {
		return curated.Errorf("machine: cartridge too large (%d bytes)", len(cfg.Cartridge))
	}

	return nil
}
