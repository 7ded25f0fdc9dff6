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

package future

import "fmt"

// Cycle is a reading of the oscillator clock.
type Cycle uint32

// MaxDelay is the furthest in the future that an event can be scheduled.
// Readings further apart than this cannot be ordered reliably.
const MaxDelay = 1<<31 - 1

// Diff returns the signed difference between two clock readings. The result
// is positive if a is later than b.
func Diff(a, b Cycle) int32 {
	return int32(a - b)
}

// Before returns true if c is earlier than o.
func (c Cycle) Before(o Cycle) bool {
	return Diff(c, o) < 0
}

// AtOrAfter returns true if c is the same as or later than o.
func (c Cycle) AtOrAfter(o Cycle) bool {
	return Diff(c, o) >= 0
}

// Add returns the clock reading delay ticks after c.
func (c Cycle) Add(delay int) Cycle {
	return c + Cycle(delay)
}

func (c Cycle) String() string {
	return fmt.Sprintf("%d", uint32(c))
}
