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

package script_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/script"
	"github.com/jetsetilly/gopherdragon/test"
)

func testROM() []uint8 {
	rom := make([]uint8, 0x4000)
	copy(rom, []uint8{
		0x86, 0x42, // LDA #$42
		0xb7, 0x04, 0x00, // STA $0400
		0x20, 0xfe, // BRA *
	})
	rom[0x3ffe] = 0x80
	rom[0x3fff] = 0x00
	return rom
}

func newScript(t *testing.T) (*script.Script, *hardware.Machine, *strings.Builder) {
	t.Helper()
	cfg := hardware.DefaultConfig(hardware.Dragon32)
	cfg.ROM = testROM()
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)
	out := &strings.Builder{}
	scr := script.NewScript(m, out)
	t.Cleanup(scr.Close)
	return scr, m, out
}

func TestPeekPoke(t *testing.T) {
	scr, m, out := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		poke(0x0600, 0x99)
		print(peek(0x0600), peek(0x8000))
	`))
	test.ExpectEquality(t, m.Peek(0x0600), uint8(0x99))
	test.ExpectEquality(t, out.String(), "153\t134\n")

	test.ExpectFailure(t, scr.RunString(`poke(0x10000, 1)`))
	test.ExpectFailure(t, scr.RunString(`poke(0x0600, 256)`))
}

func TestStepAndRegisters(t *testing.T) {
	scr, m, out := newScript(t)

	// the reset sequence needs two steps
	test.DemandSuccess(t, scr.RunString(`
		step(4)
		print(string.format("%04x %02x", reg("pc"), reg("a")))
		reg("x", 0x1234)
		reg("d", 0x0102)
	`))
	test.ExpectEquality(t, out.String(), "8005 42\n")
	test.ExpectEquality(t, m.Peek(0x0400), uint8(0x42))
	test.ExpectEquality(t, m.CPU.X, uint16(0x1234))
	test.ExpectEquality(t, m.CPU.A, uint8(0x01))
	test.ExpectEquality(t, m.CPU.B, uint8(0x02))

	test.ExpectFailure(t, scr.RunString(`reg("q")`))
}

func TestRunAndFrames(t *testing.T) {
	scr, m, out := newScript(t)

	test.DemandSuccess(t, scr.RunString(`
		run(10000)
		print(frames(2))
	`))
	test.ExpectEquality(t, out.String(), "2\n")
	test.ExpectEquality(t, m.TV.GetCoords().Frame, 2)
}

func TestKeyboard(t *testing.T) {
	scr, _, _ := newScript(t)
	test.ExpectSuccess(t, scr.RunString(`press("A") release("A") press("ENTER") release()`))
	test.ExpectFailure(t, scr.RunString(`press("NOTAKEY")`))
}

func TestTrace(t *testing.T) {
	scr, _, out := newScript(t)
	test.DemandSuccess(t, scr.RunString(`trace(true) step(4) trace(false) step(1)`))
	test.ExpectSuccess(t, strings.Contains(out.String(), "8000  86 42"))
	test.ExpectEquality(t, strings.Count(out.String(), "\n"), 3)
}

func TestFile(t *testing.T) {
	scr, m, _ := newScript(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`poke(0x0700, 7)`), 0o644))
	test.DemandSuccess(t, scr.RunFile(fn))
	test.ExpectEquality(t, m.Peek(0x0700), uint8(7))

	test.ExpectFailure(t, scr.RunFile(filepath.Join(t.TempDir(), "missing.lua")))
}

func TestJoystick(t *testing.T) {
	scr, m, _ := newScript(t)
	test.ExpectSuccess(t, scr.RunString(`joystick(1, 10, 63, true)`))
	test.ExpectEquality(t, m.Joysticks[1].X, uint8(10))
	test.ExpectEquality(t, m.Joysticks[1].Y, uint8(63))
	test.ExpectSuccess(t, m.Joysticks[1].Fire)
	test.ExpectEquality(t, m.PIA0.A.Input()&0x02, 0x00)

	test.ExpectSuccess(t, scr.RunString(`joystick(0, 0, 0)`))
	test.ExpectSuccess(t, !m.Joysticks[0].Fire)

	test.ExpectFailure(t, scr.RunString(`joystick(2, 0, 0)`))
	test.ExpectFailure(t, scr.RunString(`joystick(0, 64, 0)`))
}
