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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess and ExpectFailure functions test for failure and success
// under generic conditions. Supported types are bool and error. The nil type
// is considered a success. This may not be how we want to interpret nil in
// all situations but because of how errors usually work (nil to indicate no
// error) we need to interpret nil in this way.
//
// ExpectEquality and ExpectInequality compare like-typed comparable values.
//
// The Demand* functions are the same as the Expect* functions except that the
// test is stopped immediately on failure.
//
// CompareWriter implements the io.Writer interface and should be used to
// capture output. The Compare() function can then be used to test for
// equality.
package test
