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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopherdragon/digest"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/hardware/television"
	"github.com/jetsetilly/gopherdragon/test"
)

const emptyHash = "0000000000000000000000000000000000000000"

func TestVideo(t *testing.T) {
	var r television.Renderer = digest.NewVideo()
	dig := r.(digest.Digest)
	test.ExpectEquality(t, dig.Hash(), emptyHash)

	line := make([]uint8, 32)
	line[0] = 0x55

	test.ExpectSuccess(t, r.NewLine(10, line))
	test.ExpectSuccess(t, r.NewFrame(1))
	first := dig.Hash()
	test.ExpectInequality(t, first, emptyHash)

	// the same frame produces a different hash because of chaining
	test.ExpectSuccess(t, r.NewLine(10, line))
	test.ExpectSuccess(t, r.NewFrame(2))
	test.ExpectInequality(t, dig.Hash(), first)

	// starting again produces the same sequence
	dig.ResetDigest()
	test.ExpectSuccess(t, r.NewLine(10, line))
	test.ExpectSuccess(t, r.NewFrame(1))
	test.ExpectEquality(t, dig.Hash(), first)

	test.ExpectFailure(t, r.NewLine(-1, line))
	test.ExpectFailure(t, r.NewLine(1000, line))
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	for i := 0; i < 3000; i++ {
		test.ExpectSuccess(t, a.SetAudio(uint8(i)))
		test.ExpectSuccess(t, b.SetAudio(uint8(i)))
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), emptyHash)

	// the partial buffer is added at the end of mixing
	h := a.Hash()
	test.ExpectSuccess(t, a.EndMixing())
	test.ExpectInequality(t, a.Hash(), h)

	// a different sample changes the hash
	test.ExpectSuccess(t, b.SetAudio(0xff))
	test.ExpectSuccess(t, b.EndMixing())
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

// a ROM that writes to the DAC and the screen memory
func testROM() []uint8 {
	rom := make([]uint8, 0x4000)
	copy(rom, []uint8{
		0x7c, 0x04, 0x00, // INC $0400
		0x7c, 0x04, 0x21, // INC $0421
		0x20, 0xf8, // BRA $8000
	})
	rom[0x3ffe] = 0x80
	rom[0x3fff] = 0x00
	return rom
}

func run(t *testing.T) (string, string) {
	t.Helper()
	cfg := hardware.DefaultConfig(hardware.Dragon32)
	cfg.ROM = testROM()
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)

	v := digest.NewVideo()
	a := digest.NewAudio()
	m.TV.AddRenderer(v)
	m.TV.AddAudioMixer(a)

	m.RunForFrameCount(3, nil)
	test.DemandSuccess(t, m.TV.End())
	return v.Hash(), a.Hash()
}

func TestDeterminism(t *testing.T) {
	v1, a1 := run(t)
	v2, a2 := run(t)
	test.ExpectEquality(t, v1, v2)
	test.ExpectEquality(t, a1, a2)
	test.ExpectInequality(t, v1, emptyHash)
}
