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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/logger"
	"github.com/youpy/go-wav"
)

// WavWriter implements the television.AudioMixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type. The
// sample rate should be the rate at which the machine produces samples.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}

	return aw, nil
}

// Len returns the number of samples collected so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// SetAudio implements the television.AudioMixer interface.
func (aw *WavWriter) SetAudio(v uint8) error {
	w := wav.Sample{}
	w.Values[0] = int(v)
	aw.buffer = append(aw.buffer, w)
	return nil
}

// EndMixing implements the television.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// eight bit samples are unsigned which suits the level produced by the
	// machine
	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(aw.sampleRate), 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
