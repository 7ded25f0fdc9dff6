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
	"fmt"

	"github.com/jetsetilly/gopherdragon/hardware/clocks"
	"github.com/jetsetilly/gopherdragon/hardware/cpu"
	"github.com/jetsetilly/gopherdragon/hardware/future"
	"github.com/jetsetilly/gopherdragon/hardware/memory/sam"
	"github.com/jetsetilly/gopherdragon/hardware/pia"
	"github.com/jetsetilly/gopherdragon/hardware/television"
	"github.com/jetsetilly/gopherdragon/logger"
)

// Machine is the main container for the emulated components of the Dragon
// or CoCo.
type Machine struct {
	Config Config

	Sched *future.Scheduler
	RAM   []uint8
	SAM   *sam.SAM
	PIA0  *pia.PIA
	PIA1  *pia.PIA
	CPU   *cpu.CPU

	// the television is not part of the machine but is attached to it
	TV *television.Television

	Keyboard  *Keyboard
	Joysticks [2]Joystick

	tape  Tape
	motor bool

	video       video
	sampleEvent future.Event

	// the cartridge interrupt line is connected to CB1 of PIA1
	cartEvent future.Event
	cartLine  bool

	runLimit future.Event

	rewind *Rewind
}

// NewMachine creates a new machine and everything associated with the
// hardware. The machine is hard reset before being returned.
func NewMachine(cfg Config) (*Machine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		Config: cfg,
		Sched:  future.NewScheduler(),
		RAM:    make([]uint8, cfg.RAM),
		TV:     television.NewTelevision(),
		PIA0:   pia.NewPIA("PIA0"),
		PIA1:   pia.NewPIA("PIA1"),
	}

	m.SAM = sam.NewSAM(m.Sched, m.RAM)
	m.SAM.PIA0 = m.PIA0
	m.SAM.PIA1 = m.PIA1

	// the machine keeps its own copy of the ROM data. pokes to ROM from a
	// debugger should not change the configuration
	if len(cfg.ROM) > 0 {
		m.SAM.ROM = append([]uint8{}, cfg.ROM...)
	}
	if len(cfg.Cartridge) > 0 {
		m.SAM.Cart = append([]uint8{}, cfg.Cartridge...)
	}

	m.CPU = cpu.NewCPU(m.SAM)
	m.CPU.SyncHook = m.sync

	m.Keyboard = newKeyboard(m)
	m.Joysticks[0].Centre()
	m.Joysticks[1].Centre()

	m.PIA0.A.ControlPostWrite = m.updateInputs
	m.PIA0.B.ControlPostWrite = m.updateInputs
	m.PIA0.B.DataPostWrite = m.updateInputs
	m.PIA1.A.DataPostWrite = m.updateInputs
	m.PIA1.A.ControlPostWrite = m.updateMotor
	m.PIA1.B.DataPostWrite = m.updateROMBank

	m.initVideo()
	m.initSound()
	m.cartEvent = future.Event{Label: "cartridge interrupt", Payload: m.cartInterrupt}
	m.runLimit = future.Event{Label: "run limit", Payload: m.CPU.Stop}

	m.Reset(true)

	logger.Logf(logger.Allow, "machine", "%s with %dK RAM", cfg.Arch, cfg.RAM/1024)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s [%s] %s", m.Config.Arch, m.TV, m.CPU)
}

// Reset the machine. A hard reset also clears RAM.
func (m *Machine) Reset(hard bool) {
	if hard {
		clear(m.RAM)
	}

	m.SAM.Reset()
	m.SAM.SelectROMBank(0)

	switch m.Config.Arch {
	case Dragon32:
		// PB2 is grounded on the Dragon 32
		m.PIA1.B.SetTiedLow(0x04)
	case CoCo:
		// PB2 reports the RAM chip size. low for 4K chips
		if m.Config.RAM == 0x1000 {
			m.PIA1.B.SetTiedLow(0x04)
		}
	}

	m.PIA0.Reset()
	m.PIA1.Reset()
	m.SetTapeInput(false)
	m.updateMotor()
	m.updateInputs()

	m.CPU.Reset()

	m.resetVideo()
	m.Sched.Machine.ScheduleIn(&m.sampleEvent, SamplePeriod)

	m.Sched.Machine.Cancel(&m.cartEvent)
	m.cartLine = false
	m.PIA1.B.SetCx1(false)
	if m.Config.AutoStart && len(m.SAM.Cart) > 0 {
		m.Sched.Machine.ScheduleIn(&m.cartEvent, m.video.lines*clocks.TicksPerLine/2)
	}

	if hard {
		logger.Log(logger.Allow, "machine", "hard reset")
	} else {
		logger.Log(logger.Allow, "machine", "soft reset")
	}
}

// sync is called by the CPU before it checks the interrupt lines
func (m *Machine) sync() {
	m.Sched.UI.RunDue()
	m.CPU.IRQ = m.PIA0.IRQ()
	m.CPU.FIRQ = m.PIA1.IRQ()
	if m.rewind != nil {
		m.rewind.resolve()
	}
}

// the Dragon 64 selects the ROM bank with PB2 of PIA1. the 32K BASIC is in
// the first bank and is selected when PB2 is high
func (m *Machine) updateROMBank() {
	if m.Config.Arch != Dragon64 {
		return
	}
	if m.PIA1.B.Value()&0x04 == 0x04 {
		m.SAM.SelectROMBank(0)
	} else {
		m.SAM.SelectROMBank(1)
	}
}

// the cartridge interrupt line is pulsed twice a frame
func (m *Machine) cartInterrupt() {
	m.cartLine = !m.cartLine
	m.PIA1.B.SetCx1(m.cartLine)
	m.Sched.Machine.Schedule(&m.cartEvent, m.cartEvent.At.Add(m.video.lines*clocks.TicksPerLine/2))
}

// Peek implements the cpubus.Peeker interface.
func (m *Machine) Peek(address uint16) uint8 {
	return m.SAM.Peek(address)
}

// Poke implements the cpubus.Poker interface.
func (m *Machine) Poke(address uint16, data uint8) {
	m.SAM.Poke(address, data)
}
