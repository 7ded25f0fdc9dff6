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

package snapshot_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/snapshot"
	"github.com/jetsetilly/gopherdragon/test"
)

// a ROM that increments $0401 forever
func testROM() []uint8 {
	rom := make([]uint8, 0x4000)
	copy(rom, []uint8{
		0x7c, 0x04, 0x01, // INC $0401
		0x20, 0xfb, // BRA $8000
	})
	rom[0x3ffe] = 0x80
	rom[0x3fff] = 0x00
	return rom
}

func newMachine(t *testing.T, arch hardware.Architecture) *hardware.Machine {
	t.Helper()
	cfg := hardware.DefaultConfig(arch)
	cfg.ROM = testROM()
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)
	return m
}

func TestRoundTrip(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	m.Run(10000)
	m.Step()

	buf := &bytes.Buffer{}
	test.DemandSuccess(t, snapshot.Write(buf, m))

	m.Run(30000)
	cpu := m.CPU.GetState()
	now := m.Sched.Now()
	ram := append([]uint8{}, m.RAM...)

	// restore into a fresh machine of the same type
	n := newMachine(t, hardware.Dragon32)
	test.DemandSuccess(t, snapshot.Read(bytes.NewReader(buf.Bytes()), n))
	n.Run(30000)
	test.ExpectEquality(t, n.CPU.GetState(), cpu)
	test.ExpectEquality(t, n.Sched.Now(), now)
	test.ExpectSuccess(t, bytes.Equal(n.RAM, ram))
	test.ExpectEquality(t, n.TV.GetCoords(), m.TV.GetCoords())
}

func TestMismatch(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	buf := &bytes.Buffer{}
	test.DemandSuccess(t, snapshot.Write(buf, m))

	// different architecture
	coco := newMachine(t, hardware.CoCo)
	test.ExpectFailure(t, snapshot.Read(bytes.NewReader(buf.Bytes()), coco))

	// corrupted magic
	b := append([]byte{}, buf.Bytes()...)
	b[0] = 'X'
	test.ExpectFailure(t, snapshot.Read(bytes.NewReader(b), m))

	// truncated
	test.ExpectFailure(t, snapshot.Read(bytes.NewReader(buf.Bytes()[:100]), m))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.snap")

	m := newMachine(t, hardware.Dragon64)
	m.Run(5000)
	m.Step()
	test.DemandSuccess(t, snapshot.Save(fn, m))
	pc := m.CPU.PC

	m.Run(5000)
	test.DemandSuccess(t, snapshot.Load(fn, m))
	test.ExpectEquality(t, m.CPU.PC, pc)

	test.ExpectFailure(t, snapshot.Load(filepath.Join(t.TempDir(), "missing"), m))
}
