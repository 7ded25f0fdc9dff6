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

package cassette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherdragon/cartridgeloader"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/test"
)

// ten samples high followed by ten samples low
func squareWave() []int {
	d := make([]int, 20)
	for i := range d {
		if i < 10 {
			d[i] = 1000
		} else {
			d[i] = -1000
		}
	}
	return d
}

func writeWAV(t *testing.T, fn string, data []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 44100},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	cfg := hardware.DefaultConfig(hardware.Dragon32)
	cfg.PAL = false
	m, err := hardware.NewMachine(cfg)
	test.DemandSuccess(t, err)
	return m
}

func advance(m *hardware.Machine, ticks int) {
	m.Sched.Advance(ticks)
	m.Sched.Machine.RunDue()
}

func tapeInput(m *hardware.Machine) bool {
	return m.PIA1.A.Input()&0x01 == 0x01
}

func TestWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.wav")
	writeWAV(t, fn, squareWave())

	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectEquality(t, cl.Kind, cartridgeloader.Tape)

	m := newMachine(t)
	p, err := NewPlayer(m, &cl)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(p.pcm.data), 20)
	test.ExpectEquality(t, p.pcm.sampleRate, 44100.0)
	test.ExpectSuccess(t, p.pcm.data[0] > 0)
	test.ExpectSuccess(t, p.pcm.data[19] < 0)
}

func TestPlayback(t *testing.T) {
	m := newMachine(t)

	pcm := pcmData{sampleRate: 44100}
	for _, v := range squareWave() {
		pcm.data = append(pcm.data, float32(v))
	}
	p := newPlayer(m, pcm)

	// nothing happens while the motor is off
	advance(m, 1000)
	test.ExpectFailure(t, tapeInput(m))
	test.ExpectEquality(t, p.pos, 0)

	// roughly 324.7 ticks per sample at the NTSC clock. the tenth sample is
	// presented at about 3246 ticks after the motor starts
	p.Motor(true)
	advance(m, 1)
	test.ExpectSuccess(t, tapeInput(m))
	advance(m, 3000)
	test.ExpectSuccess(t, tapeInput(m))
	test.ExpectEquality(t, p.pos, 10)
	advance(m, 400)
	test.ExpectFailure(t, tapeInput(m))
	test.ExpectEquality(t, p.pos, 11)

	// stopping the motor stops the tape
	p.Motor(false)
	advance(m, 10000)
	test.ExpectEquality(t, p.pos, 11)

	// play to the end
	p.Motor(true)
	advance(m, 10000)
	test.ExpectSuccess(t, p.EndOfTape())
	test.ExpectFailure(t, tapeInput(m))

	p.Rewind()
	test.ExpectEquality(t, p.Position(), 0.0)
}

func TestMachineMotor(t *testing.T) {
	m := newMachine(t)
	pcm := pcmData{sampleRate: 44100, data: []float32{1, 1, 1, 1}}
	p := newPlayer(m, pcm)

	// the motor relay is bit 3 of control register A of PIA1
	m.PIA1.Write(1, 0x3c)
	test.ExpectSuccess(t, m.Motor())
	test.ExpectSuccess(t, p.motor)
	m.PIA1.Write(1, 0x34)
	test.ExpectFailure(t, p.motor)
}

func TestUnsupported(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.cas")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x55, 0x55}, 0o644))
	cl := cartridgeloader.NewLoader(fn, "tape")
	_, err := NewPlayer(newMachine(t), &cl)
	test.ExpectFailure(t, err)
}
