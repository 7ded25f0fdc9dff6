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

// Package cassette plays recordings of cassette tapes into the emulated
// machine. Recordings can be WAV or MP3 files.
//
// The player is not a tape codec. It only presents the recorded signal to
// the cassette input of the machine in the same way as a real tape recorder.
// The BASIC ROM does the decoding. The signal is advanced by an event in the
// machine queue and the player only advances while the cassette motor is on.
package cassette
