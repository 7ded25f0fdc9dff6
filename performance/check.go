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

package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/hardware"
)

// Check runs the machine for the duration and writes the speed of the
// emulation to output. Profiles are written to the current directory.
func Check(output io.Writer, m *hardware.Machine, duration time.Duration, profile Profile) error {
	if duration <= 0 {
		return curated.Errorf("performance: %v", "duration must be positive")
	}

	var numFrames int
	var elapsed time.Duration

	err := cpuProfile(profile, "cpu.profile", func() error {
		var timesUp atomic.Bool
		t := time.AfterFunc(duration, func() {
			timesUp.Store(true)
		})
		defer t.Stop()

		startFrame := m.TV.GetCoords().Frame
		startTime := time.Now()

		for !timesUp.Load() {
			m.RunForFrameCount(1, func(_ int) bool {
				return !timesUp.Load()
			})
		}

		elapsed = time.Since(startTime)
		numFrames = m.TV.GetCoords().Frame - startFrame
		return nil
	})
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(m, numFrames, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)

	return memProfile(profile, "mem.profile")
}
