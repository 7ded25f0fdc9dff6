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
	"github.com/jetsetilly/gopherdragon/hardware/clocks"
	"github.com/jetsetilly/gopherdragon/hardware/future"
)

// SamplePeriod is the number of master clock ticks between audio samples.
const SamplePeriod = clocks.TicksPerLine / 2

// SampleRate returns the number of audio samples produced per second.
func (m *Machine) SampleRate() int {
	return int(clocks.Frequency(m.Config.PAL)) / SamplePeriod
}

func (m *Machine) initSound() {
	m.sampleEvent = future.Event{Label: "audio sample", Payload: m.audioSample}
}

func (m *Machine) audioSample() {
	m.TV.SetAudio(m.SoundLevel())
	m.Sched.Machine.Schedule(&m.sampleEvent, m.sampleEvent.At.Add(SamplePeriod))
}

// SoundLevel returns the current level of the audio output. The DAC is heard
// when the sound output is enabled by CB2 of PIA1 and the multiplexer selects
// the DAC. The single bit sound on port B of PIA1 is always heard.
func (m *Machine) SoundLevel() uint8 {
	var level int
	if m.PIA1.B.Cx2() && m.muxSource() == 0 {
		level = int(m.dac()) << 1
	}
	if m.PIA1.B.Output()&0x02 == 0x02 {
		level += 0x7f
	}
	return uint8(level)
}
