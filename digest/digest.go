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

// Package digest is used to create mathematical hashes of the output of the
// emulation. Two runs of the emulation that produce the same hash have
// produced the same video (or audio) output.
//
// Hashes are chained. The hash of each frame includes the hash of the
// previous frame, so the final hash is a fingerprint of the entire run.
package digest

// Digest implementations compute a hash of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
