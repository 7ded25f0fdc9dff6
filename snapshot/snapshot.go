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

// Package snapshot writes the state of a machine to a file and reads it back
// again. The state is written field by field in a fixed order with a short
// header identifying the type of machine the state came from.
//
// The television and any attached tape player are not part of the snapshot.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/hardware"
	"github.com/jetsetilly/gopherdragon/logger"
)

const magic = "GDRAGON"

// Version of the snapshot format. Snapshots with a different version
// number can not be read.
const Version = 1

type header struct {
	Magic   [len(magic)]byte
	Version uint16
	Arch    uint8
	PAL     bool
	RAM     uint32
}

var byteOrder = binary.BigEndian

// Write the state of the machine to the io.Writer. Should only be called
// between instructions.
func Write(w io.Writer, m *hardware.Machine) error {
	s := m.Snapshot()

	h := header{
		Version: Version,
		Arch:    uint8(m.Config.Arch),
		PAL:     m.Config.PAL,
		RAM:     uint32(len(s.RAM)),
	}
	copy(h.Magic[:], magic)

	bw := bufio.NewWriter(w)

	for _, v := range []any{h, s.Now, s.CPU, s.SAM, s.PIA0, s.PIA1, s.Timing, s.RAM} {
		if err := binary.Write(bw, byteOrder, v); err != nil {
			return curated.Errorf("snapshot: %v", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	return nil
}

// Read a state from the io.Reader and plumb it into the machine. The machine
// must be of the same type as the machine the state was written from.
func Read(r io.Reader, m *hardware.Machine) error {
	br := bufio.NewReader(r)

	var h header
	if err := binary.Read(br, byteOrder, &h); err != nil {
		return curated.Errorf("snapshot: %v", err)
	}

	if string(h.Magic[:]) != magic {
		return curated.Errorf("snapshot: %v", "not a snapshot file")
	}
	if h.Version != Version {
		return curated.Errorf("snapshot: unsupported version (%d)", h.Version)
	}
	if hardware.Architecture(h.Arch) != m.Config.Arch || h.PAL != m.Config.PAL {
		return curated.Errorf("snapshot: state is for a different machine (%s)", hardware.Architecture(h.Arch))
	}
	if int(h.RAM) != len(m.RAM) {
		return curated.Errorf("snapshot: state is for a different machine (%dK RAM)", h.RAM/1024)
	}

	s := &hardware.State{
		RAM: make([]uint8, h.RAM),
	}

	for _, v := range []any{&s.Now, &s.CPU, &s.SAM, &s.PIA0, &s.PIA1, &s.Timing, s.RAM} {
		if err := binary.Read(br, byteOrder, v); err != nil {
			return curated.Errorf("snapshot: %v", err)
		}
	}

	return m.Plumb(s)
}

// Save the state of the machine to the named file.
func Save(filename string, m *hardware.Machine) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("snapshot: %v", err)
		}
	}()

	if err := Write(f, m); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "snapshot", "saved to %s", filename)
	return nil
}

// Load the state of the machine from the named file.
func Load(filename string, m *hardware.Machine) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	defer f.Close()

	if err := Read(f, m); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "snapshot", "loaded from %s", filename)
	return nil
}
