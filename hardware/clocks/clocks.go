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

// Package clocks contains the master clock frequencies and the video timing
// constants derived from them. All timing in the emulation is measured in
// ticks of the master oscillator.
package clocks

// Master oscillator frequencies in MHz.
const (
	NTSC = 14.31818
	PAL  = 14.218
)

// The CPU clock is the master oscillator divided by 16 in the slow rate and
// by 8 in the fast rate.
const (
	SlowCycle = 16
	FastCycle = 8
)

// Video timing in ticks of the master oscillator.
const (
	TicksPerLine = 912

	// the horizontal sync pulse
	HSyncWidth = 80

	// the VDG fetches 32 bytes per active line
	BytesPerLine = 32
)

// Lines per field.
const (
	NTSCLines = 262
	PALLines  = 312
)

// Active lines and the line on which field sync begins.
const (
	ActiveLines = 192
	TopBorder   = 38
	FSyncLine   = TopBorder + ActiveLines + 25
)

// TicksPerFrame returns the number of master ticks for a single field.
func TicksPerFrame(pal bool) int {
	if pal {
		return PALLines * TicksPerLine
	}
	return NTSCLines * TicksPerLine
}

// Frequency returns the master oscillator frequency in Hz.
func Frequency(pal bool) float64 {
	if pal {
		return PAL * 1000000
	}
	return NTSC * 1000000
}
