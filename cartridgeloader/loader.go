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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopherdragon/curated"
	"github.com/jetsetilly/gopherdragon/logger"
)

// Kind is the type of data being loaded.
type Kind int

// List of valid Kind values.
const (
	ROM Kind = iota
	Cartridge
	Tape
)

func (k Kind) String() string {
	switch k {
	case ROM:
		return "ROM"
	case Cartridge:
		return "cartridge"
	case Tape:
		return "tape"
	}
	return "unknown"
}

// Loader is used to specify the data to attach to the machine.
type Loader struct {
	// filename of data to load
	Filename string

	Kind Kind

	// expected hash of the loaded data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// reading from the loaded data. used by decoders that need an
	// io.ReadSeeker
	reader *bytes.Reader
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The kind argument should be one of "ROM", "CARTRIDGE" or "TAPE". If it is
// "AUTO" or the empty string then the file extension is used to decide.
// Unrecognised extensions are treated as ROMs.
func NewLoader(filename string, kind string) Loader {
	cl := Loader{
		Filename: filename,
	}

	switch strings.TrimSpace(strings.ToUpper(kind)) {
	case "ROM":
		cl.Kind = ROM
	case "CARTRIDGE":
		cl.Kind = Cartridge
	case "TAPE":
		cl.Kind = Tape
	default:
		switch strings.ToUpper(path.Ext(filename)) {
		case ".DGN", ".CCC":
			cl.Kind = Cartridge
		case ".WAV", ".MP3":
			cl.Kind = Tape
		default:
			cl.Kind = ROM
		}
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// Extension returns the file extension of the filename in upper case.
func (cl Loader) Extension() string {
	return strings.ToUpper(path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the data. Loader filenames with a valid schema will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		cl.reader = bytes.NewReader(cl.Data)
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(cl.Data) == 0 {
		return curated.Errorf("cartridgeloader: %v", "file is empty")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash
	cl.reader = bytes.NewReader(cl.Data)

	logger.Logf(logger.Allow, "cartridgeloader", "%s loaded from %s (%d bytes)", cl.Kind, cl.ShortName(), len(cl.Data))

	return nil
}

// Read implements the io.Reader interface. Load() must have been called.
func (cl *Loader) Read(p []byte) (int, error) {
	if cl.reader == nil {
		return 0, curated.Errorf("cartridgeloader: %v", "data has not been loaded")
	}
	return cl.reader.Read(p)
}

// Seek implements the io.Seeker interface. Load() must have been called.
func (cl *Loader) Seek(offset int64, whence int) (int64, error) {
	if cl.reader == nil {
		return 0, curated.Errorf("cartridgeloader: %v", "data has not been loaded")
	}
	return cl.reader.Seek(offset, whence)
}
