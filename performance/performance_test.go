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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/performance"
	"github.com/jetsetilly/gopherdragon/test"
)

func newMachine(t *testing.T, arch hardware.Architecture) *hardware.Machine {
	t.Helper()
	rom := make([]uint8, 0x4000)
	copy(rom, []uint8{0x20, 0xfe}) // BRA *
	rom[0x3ffe] = 0x80
	rom[0x3fff] = 0x00

	cfg := hardware.DefaultConfig(arch)
	cfg.ROM = rom
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)
	return m
}

func TestFrameRate(t *testing.T) {
	// 262 lines of 912 ticks at 14.31818MHz
	ntsc := performance.FrameRate(newMachine(t, hardware.CoCo))
	test.ExpectSuccess(t, ntsc > 59.9 && ntsc < 60.0)

	// 312 lines of 912 ticks at 14.218MHz
	pal := performance.FrameRate(newMachine(t, hardware.Dragon32))
	test.ExpectSuccess(t, pal > 49.9 && pal < 50.0)

	m := newMachine(t, hardware.Dragon32)
	fps, accuracy := performance.CalcFPS(m, 100, 1.0)
	test.ExpectEquality(t, fps, 100.0)
	test.ExpectSuccess(t, accuracy > 200.0)
}

func TestCheck(t *testing.T) {
	m := newMachine(t, hardware.Dragon32)
	w := &strings.Builder{}
	test.DemandSuccess(t, performance.Check(w, m, 50*time.Millisecond, performance.ProfileNone))
	test.ExpectSuccess(t, strings.Contains(w.String(), "fps"))

	test.ExpectFailure(t, performance.Check(w, m, 0, performance.ProfileNone))
}
