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

// Package future implements the cycle clock and the event scheduler that
// every timing dependent part of the emulation uses.
//
// The clock counts oscillator ticks. It is a wrapping 32bit counter and so
// two clock readings must only ever be compared with the Diff() function (or
// the Before() and AtOrAfter() functions, which use Diff()). Comparison is
// correct so long as the two readings are less than 2^31 ticks apart.
//
// Events are owned by whichever part of the emulation creates them. The
// scheduler never allocates or frees events, it only links and unlinks them.
// An event can only be in one queue at a time and scheduling an event that is
// already queued first removes it from the queue.
//
//	var flush future.Event
//	flush.Label = "audio flush"
//	flush.Payload = func() {
//		// do work
//		sch.Machine.ScheduleIn(&flush, 324)
//	}
//	sch.Machine.ScheduleIn(&flush, 324)
//
// Queues are kept in ascending order of trigger cycle. Events due on the same
// cycle are dispatched in the order they were scheduled. Callers drain a queue
// with RunDue() or with HasDue() and DispatchNext() in a loop.
//
// Nothing in this package uses goroutines or timers. The emulation is
// single-threaded and time only moves when Advance() is called.
package future
