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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdragon/debugger"
	"github.com/jetsetilly/gopherdragon/hardware"
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

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	cfg := hardware.DefaultConfig(hardware.Dragon32)
	cfg.ROM = testROM()
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)
	return m
}

func TestCommands(t *testing.T) {
	m := newMachine(t)
	out := &strings.Builder{}

	// the reset sequence needs two steps
	dbg := debugger.NewDebugger(m, strings.NewReader("ssssrdq"), out)
	test.DemandSuccess(t, dbg.Start())

	test.ExpectEquality(t, m.Peek(0x0400), uint8(0x42))
	test.ExpectEquality(t, m.CPU.PC, uint16(0x8005))
	test.ExpectSuccess(t, strings.Contains(out.String(), "8005  20 fe"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "A=42"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "PIA0"))
}

func TestQuit(t *testing.T) {
	m := newMachine(t)
	out := &strings.Builder{}

	// nothing after the quit command is acted on
	dbg := debugger.NewDebugger(m, strings.NewReader("qssss"), out)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectEquality(t, m.Peek(0x0400), uint8(0x00))

	test.ExpectFailure(t, dbg.Command('q'))
	test.ExpectSuccess(t, dbg.Command('x'))
	test.ExpectSuccess(t, strings.Contains(out.String(), "unknown command (x)"))
}

func TestTraceAndFrame(t *testing.T) {
	m := newMachine(t)
	out := &strings.Builder{}

	dbg := debugger.NewDebugger(m, strings.NewReader("tsssst"), out)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(out.String(), "tracing on"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "RESET"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "tracing off"))

	frame := m.TV.GetCoords().Frame
	test.ExpectSuccess(t, dbg.Command('c'))
	test.ExpectEquality(t, m.TV.GetCoords().Frame, frame+1)
}

func TestRewind(t *testing.T) {
	m := newMachine(t)
	out := &strings.Builder{}
	dbg := debugger.NewDebugger(m, strings.NewReader(""), out)

	// nothing to go back to yet
	test.ExpectSuccess(t, dbg.Command('b'))
	test.ExpectSuccess(t, strings.Contains(out.String(), "rewind: cannot go back"))

	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, dbg.Command('c'))
	}
	test.ExpectEquality(t, m.TV.GetCoords().Frame, 3)

	test.ExpectSuccess(t, dbg.Command('b'))
	test.ExpectSuccess(t, strings.Contains(out.String(), "rewound to frame"))
	test.ExpectSuccess(t, m.TV.GetCoords().Frame < 3)
}
