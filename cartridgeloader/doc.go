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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated machine. That data might be a BASIC ROM, a cartridge or a
// tape recording.
//
// When the Loader instance is created the kind of data is decided from the
// file extension. The Load() function loads the data from a local file or an
// HTTP address.
package cartridgeloader
