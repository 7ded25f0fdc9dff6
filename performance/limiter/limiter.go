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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(50)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		m.StepFrame()
//	}
package limiter

import (
	"time"
)

// Limiter will trigger a fixed number of times per second.
type Limiter struct {
	rate   float64
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is the number of triggers per second.
func NewLimiter(rate float64) *Limiter {
	lim := &Limiter{}
	lim.ticker = time.NewTicker(period(rate))
	lim.rate = rate
	return lim
}

func period(rate float64) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Duration(float64(time.Second) / rate)
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(rate float64) {
	lim.rate = rate
	lim.ticker.Reset(period(rate))
}

// Rate returns the current rate of the Limiter.
func (lim *Limiter) Rate() float64 {
	return lim.rate
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the Limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
