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

package hardware_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/hardware/clocks"
	"github.com/jetsetilly/gopherdragon/hardware/future"
	"github.com/jetsetilly/gopherdragon/test"
)

// a ROM that stores $42 at $0400 and then increments $0401 forever
func testROM(size int) []uint8 {
	rom := make([]uint8, size)
	copy(rom, []uint8{
		0x86, 0x42, // LDA #$42
		0xb7, 0x04, 0x00, // STA $0400
		0x7c, 0x04, 0x01, // INC $0401
		0x20, 0xfb, // BRA $8005
	})
	rom[0x3ffe] = 0x80
	rom[0x3fff] = 0x00
	return rom
}

func newMachine(t *testing.T, arch hardware.Architecture) *hardware.Machine {
	t.Helper()
	cfg := hardware.DefaultConfig(arch)
	cfg.ROM = testROM(0x4000)
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)
	return m
}

func TestConfig(t *testing.T) {
	cfg := hardware.DefaultConfig(hardware.Dragon32)
	cfg.RAM = 0x3000
	_, err := hardware.NewMachine(cfg)
	test.ExpectSuccess(t, curated.Is(err, "machine: unsupported RAM size (%d bytes)"))

	cfg = hardware.DefaultConfig(hardware.Dragon64)
	cfg.RAM = 0x8000
	_, err = hardware.NewMachine(cfg)
	test.ExpectFailure(t, err)

	cfg = hardware.DefaultConfig(hardware.CoCo)
	cfg.ROM = make([]uint8, 0x8000)
	_, err = hardware.NewMachine(cfg)
	test.ExpectSuccess(t, curated.Is(err, "machine: 32K ROM is only supported by the %s"))

	cfg = hardware.DefaultConfig(hardware.CoCo)
	cfg.ROM = make([]uint8, 0x1234)
	_, err = hardware.NewMachine(cfg)
	test.ExpectFailure(t, err)

	arch, err := hardware.ParseArchitecture("Dragon 64")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, arch, hardware.Dragon64)
	_, err = hardware.ParseArchitecture("spectrum")
	test.ExpectFailure(t, err)
}

func TestBoot(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	m.Run(10000)
	test.ExpectEquality(t, m.Peek(0x0400), 0x42)
	test.ExpectInequality(t, m.Peek(0x0401), 0x00)

	// a hard reset clears RAM
	m.Reset(true)
	test.ExpectEquality(t, m.Peek(0x0400), 0x00)
}

func TestRunBudget(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	before := m.Sched.Now()
	m.Run(1000)
	elapsed := int(future.Diff(m.Sched.Now(), before))
	test.ExpectSuccess(t, elapsed >= 1000)
	test.ExpectSuccess(t, elapsed < 1000+20*clocks.SlowCycle)

	// the run limit event is not left in the queue
	m.Run(0)
	test.ExpectEquality(t, m.Sched.Now(), before.Add(elapsed))
}

func TestFrames(t *testing.T) {
	m := newMachine(t, hardware.CoCo)
	m.RunForFrameCount(2, nil)
	test.ExpectEquality(t, m.TV.GetCoords().Frame, 2)

	// NTSC frames
	ticks := int(future.Diff(m.Sched.Now(), 0))
	test.ExpectSuccess(t, ticks >= 2*clocks.TicksPerFrame(false))

	stopped := 0
	m.RunForFrameCount(5, func(frame int) bool {
		stopped = frame
		return frame < 3
	})
	test.ExpectEquality(t, stopped, 3)
}

// select keyboard columns with port B of PIA0
func driveColumns(m *hardware.Machine, columns uint8) {
	m.PIA0.Write(3, 0x00)
	m.PIA0.Write(2, 0xff)
	m.PIA0.Write(3, 0x04)
	m.PIA0.Write(2, columns)
	m.PIA0.Write(1, 0x04)
}

func TestKeyboard(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)

	// A is column 1, row 2 on the Dragon
	driveColumns(m, 0xfd)
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x7f, 0x7f)
	test.ExpectSuccess(t, m.Keyboard.Press("a"))
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x7f, 0x7b)

	// not visible when the column is not selected
	driveColumns(m, 0xff)
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x7f, 0x7f)

	test.ExpectSuccess(t, m.Keyboard.Release("A"))
	driveColumns(m, 0x00)
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x7f, 0x7f)

	// SHIFT is in the same place on both machines
	test.ExpectSuccess(t, m.Keyboard.Press("shift"))
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x7f, 0x3f)
	m.Keyboard.ReleaseAll()
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x7f, 0x7f)

	err := m.Keyboard.Press("F1")
	test.ExpectSuccess(t, curated.Is(err, "keyboard: unknown key (%s)"))

	// A is row 0 on the CoCo
	m = newMachine(t, hardware.CoCo)
	driveColumns(m, 0xfd)
	test.ExpectSuccess(t, m.Keyboard.Press("A"))
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x7f, 0x7e)
}

func TestJoystickComparator(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	m.PIA0.Write(1, 0x34)
	m.PIA0.Write(3, 0x34)

	// DAC at zero is below the centred joystick
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x80, 0x00)

	m.PIA1.Write(0, 0xfc)
	m.PIA1.Write(1, 0x04)
	m.PIA1.Write(0, 40<<2)
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x80, 0x80)

	m.Joysticks[0].X = 50
	m.PIA1.Write(0, 40<<2)
	test.ExpectEquality(t, m.PIA0.Peek(0)&0x80, 0x00)
}

func TestFieldSyncInterrupt(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)

	// rising edge of FS on CB1 of PIA0
	m.PIA0.Write(3, 0x07)
	test.ExpectFailure(t, m.PIA0.IRQ())
	m.RunForFrameCount(1, nil)
	test.ExpectSuccess(t, m.PIA0.IRQ())
	test.ExpectEquality(t, m.PIA0.Peek(3)&0x80, 0x80)

	// the interrupt line reaches the CPU. the CPU has interrupts masked
	m.Step()
	test.ExpectSuccess(t, m.CPU.IRQ)
	test.ExpectFailure(t, m.CPU.FIRQ)
}

func TestSound(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	m.PIA1.Write(0, 0xfc)
	m.PIA1.Write(1, 0x04)
	m.PIA1.Write(0, 0x80)

	// the multiplexer selects the cartridge after reset
	test.ExpectEquality(t, m.SoundLevel(), 0)

	m.PIA0.Write(1, 0x34)
	m.PIA0.Write(3, 0x34)
	test.ExpectEquality(t, m.SoundLevel(), 0x40)

	// sound disabled by CB2 of PIA1
	m.PIA1.Write(3, 0x34)
	test.ExpectEquality(t, m.SoundLevel(), 0)

	// single bit sound
	m.PIA1.Write(3, 0x30)
	m.PIA1.Write(2, 0x02)
	m.PIA1.Write(3, 0x34)
	m.PIA1.Write(2, 0x02)
	test.ExpectEquality(t, m.SoundLevel(), 0x7f)

	test.ExpectSuccess(t, m.SampleRate() > 30000)
}

type tape struct {
	on bool
}

func (t *tape) Motor(on bool) {
	t.on = on
}

func TestTape(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	tp := &tape{}
	m.AttachTape(tp)

	m.PIA1.Write(1, 0x3c)
	test.ExpectSuccess(t, m.Motor())
	test.ExpectSuccess(t, tp.on)

	m.PIA1.Write(1, 0x34)
	test.ExpectFailure(t, tp.on)

	m.SetTapeInput(true)
	test.ExpectEquality(t, m.PIA1.A.Input()&0x01, 0x01)
	m.SetTapeInput(false)
	test.ExpectEquality(t, m.PIA1.A.Input()&0x01, 0x00)
}

func TestDragon64ROMBank(t *testing.T) {
	cfg := hardware.DefaultConfig(hardware.Dragon64)
	cfg.ROM = make([]uint8, 0x8000)
	copy(cfg.ROM, testROM(0x4000))
	cfg.ROM[0x4000] = 0x22
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.Peek(0x8000), 0x86)

	// PB2 low selects the second bank
	m.PIA1.Write(2, 0x04)
	m.PIA1.Write(3, 0x04)
	m.PIA1.Write(2, 0x00)
	test.ExpectEquality(t, m.Peek(0x8000), 0x22)

	m.PIA1.Write(2, 0x04)
	test.ExpectEquality(t, m.Peek(0x8000), 0x86)
}

func TestCartridgeAutoStart(t *testing.T) {
	cfg := hardware.DefaultConfig(hardware.Dragon32)
	cfg.ROM = testROM(0x4000)
	cfg.Cartridge = make([]uint8, 0x2000)
	cfg.Cartridge[0] = 0x12
	cfg.AutoStart = true
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, m.Peek(0xc000), 0x12)

	m.PIA1.Write(3, 0x07)
	m.RunForFrameCount(1, nil)
	test.ExpectSuccess(t, m.PIA1.IRQ())
	m.Step()
	test.ExpectSuccess(t, m.CPU.FIRQ)
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	m.Run(5000)
	m.Step()

	s := m.Snapshot()
	m.Run(20000)
	cpu := m.CPU.GetState()
	now := m.Sched.Now()
	ram := append([]uint8{}, m.RAM...)
	coords := m.TV.GetCoords()

	test.DemandSuccess(t, m.Plumb(s))
	m.Run(20000)
	test.ExpectEquality(t, m.CPU.GetState(), cpu)
	test.ExpectEquality(t, m.Sched.Now(), now)
	test.ExpectEquality(t, m.TV.GetCoords(), coords)
	test.ExpectSuccess(t, bytes.Equal(m.RAM, ram))

	// a state from a machine with a different amount of RAM
	other := newMachine(t, hardware.CoCo)
	test.ExpectFailure(t, other.Plumb(s))
	test.ExpectFailure(t, other.Plumb(nil))
}

func TestRewind(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	r := m.EnableRewind(2)
	test.ExpectEquality(t, r.Len(), 1)
	test.ExpectEquality(t, m.EnableRewind(10), r)

	// snapshots are taken once the CPU is between instructions. running
	// for another line makes sure that has happened
	m.RunForFrameCount(1, nil)
	m.Run(clocks.TicksPerLine)
	test.ExpectEquality(t, r.Len(), 2)

	// the oldest snapshot is forgotten
	m.RunForFrameCount(2, nil)
	m.Run(clocks.TicksPerLine)
	test.ExpectEquality(t, r.Len(), 2)

	test.ExpectSuccess(t, r.Back(1))
	test.ExpectEquality(t, m.TV.GetCoords().Frame, 2)
	test.ExpectEquality(t, r.Len(), 1)

	test.ExpectFailure(t, r.Back(1))
}
