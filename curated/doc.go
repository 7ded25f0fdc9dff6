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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The Has() function is similar but checks if a pattern
// occurs somewhere in the error chain.
//
//	e := curated.Errorf("machine: %v", curated.Errorf(UnsupportedRAM, 48))
//	curated.Has(e, UnsupportedRAM) == true
//	curated.Is(e, UnsupportedRAM) == false
//
// The Error() function of a curated error normalises the chain so that
// adjacent duplicate parts are removed. For example, wrapping "rom: file not
// found" in "rom: %v" results in "rom: file not found" and not "rom: rom: file
// not found". Chains are composed of parts separated by the sub-string ": ".
//
// Only code outside of the emulated hardware returns errors. The CPU, SAM, PIA
// and event scheduler have defined behaviour for every input and never fail.
package curated
