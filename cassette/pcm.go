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
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopherdragon/cartridgeloader"
	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/logger"
)

const logTag = "cassette"

type pcmData struct {
	totalTime  float64 // in seconds
	sampleRate float64

	// data is mono data (taken from the left channel in the case of stereo
	// source files)
	data []float32
}

func getPCM(cl *cartridgeloader.Loader) (pcmData, error) {
	p := pcmData{}

	switch cl.Extension() {
	case ".WAV":
		dec := wav.NewDecoder(cl)
		if dec == nil {
			return p, curated.Errorf("cassette: wav: %v", "error decoding")
		}

		if !dec.IsValidFile() {
			return p, curated.Errorf("cassette: wav: %v", "not a valid wav file")
		}

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, curated.Errorf("cassette: wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of data stream
		chans := int(dec.NumChans)
		if chans < 1 {
			chans = 1
		}
		p.data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			p.data = append(p.data, floatBuf.Data[i])
		}

		p.sampleRate = float64(dec.SampleRate)

	case ".MP3":
		dec, err := mp3.NewDecoder(cl)
		if err != nil {
			return p, curated.Errorf("cassette: mp3: %v", err)
		}

		chunk := make([]byte, 4096)
		for err != io.EOF {
			var n int
			n, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, curated.Errorf("cassette: mp3: %v", err)
			}

			// the decoded stream is always 16bit little endian stereo. four
			// bytes per sample of which we want the left channel
			for i := 0; i+1 < n; i += 4 {
				f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				p.data = append(p.data, float32(f))
			}
		}

		p.sampleRate = float64(dec.SampleRate())

	default:
		return p, curated.Errorf("cassette: %v", "unsupported file type ("+cl.Extension()+")")
	}

	if p.sampleRate <= 0 || len(p.data) == 0 {
		return p, curated.Errorf("cassette: %v", "recording is empty")
	}

	p.totalTime = float64(len(p.data)) / p.sampleRate

	logger.Logf(logger.Allow, logTag, "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf(logger.Allow, logTag, "total time: %.02fs", p.totalTime)

	return p, nil
}
