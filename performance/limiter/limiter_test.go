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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopherdragon/performance/limiter"
	"github.com/jetsetilly/gopherdragon/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(200)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 200.0)

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// five triggers at 5ms intervals
	test.ExpectSuccess(t, time.Since(start) >= 20*time.Millisecond)

	lim.SetLimit(1)
	test.ExpectEquality(t, lim.Rate(), 1.0)
	test.ExpectFailure(t, lim.HasWaited())
}
