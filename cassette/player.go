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
	"fmt"

	"github.com/jetsetilly/gopherdragon/cartridgeloader"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/hardware/clocks"
	"github.com/jetsetilly/gopherdragon/hardware/future"
	"github.com/jetsetilly/gopherdragon/logger"
)

// Player implements the hardware.Tape interface.
type Player struct {
	m   *hardware.Machine
	pcm pcmData

	// number of master clock ticks per sample of the recording. the
	// fractional part is accumulated in frac
	ticksPerSample float64
	frac           float64

	// index of the next sample to present to the machine
	pos int

	motor bool
	ev    future.Event
}

// NewPlayer loads the recording and attaches a new player to the machine.
func NewPlayer(m *hardware.Machine, cl *cartridgeloader.Loader) (*Player, error) {
	if !cl.HasLoaded() {
		if err := cl.Load(); err != nil {
			return nil, err
		}
	} else if _, err := cl.Seek(0, 0); err != nil {
		return nil, err
	}

	pcm, err := getPCM(cl)
	if err != nil {
		return nil, err
	}

	return newPlayer(m, pcm), nil
}

func newPlayer(m *hardware.Machine, pcm pcmData) *Player {
	p := &Player{
		m:              m,
		pcm:            pcm,
		ticksPerSample: clocks.Frequency(m.Config.PAL) / pcm.sampleRate,
	}
	p.ev = future.Event{Label: "cassette", Payload: p.step}
	m.AttachTape(p)
	return p
}

func (p *Player) String() string {
	state := "stopped"
	if p.motor {
		state = "playing"
	}
	return fmt.Sprintf("%s %.02fs/%.02fs", state, p.Position(), p.pcm.totalTime)
}

// Motor implements the hardware.Tape interface.
func (p *Player) Motor(on bool) {
	if on == p.motor {
		return
	}
	p.motor = on

	if on {
		p.frac = 0
		p.m.Sched.Machine.ScheduleIn(&p.ev, 1)
		logger.Logf(logger.Allow, logTag, "motor on at %.02fs", p.Position())
	} else {
		p.m.Sched.Machine.Cancel(&p.ev)
		logger.Logf(logger.Allow, logTag, "motor off at %.02fs", p.Position())
	}
}

// Position returns the position of the tape in seconds.
func (p *Player) Position() float64 {
	return float64(p.pos) / p.pcm.sampleRate
}

// Rewind the tape to the beginning.
func (p *Player) Rewind() {
	p.pos = 0
	p.frac = 0
}

// EndOfTape returns true if the whole of the recording has been played.
func (p *Player) EndOfTape() bool {
	return p.pos >= len(p.pcm.data)
}

func (p *Player) step() {
	if p.EndOfTape() {
		p.m.SetTapeInput(false)
		logger.Log(logger.Allow, logTag, "end of tape")
		return
	}

	p.m.SetTapeInput(p.pcm.data[p.pos] > 0)
	p.pos++

	p.frac += p.ticksPerSample
	d := int(p.frac)
	p.frac -= float64(d)
	p.m.Sched.Machine.Schedule(&p.ev, p.ev.At.Add(d))
}
