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

package cartridgeloader_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdragon/cartridgeloader"
	"github.com/jetsetilly/gopherdragon/test"
)

func TestKind(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.NewLoader("d32.rom", "").Kind, cartridgeloader.ROM)
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.dgn", "AUTO").Kind, cartridgeloader.Cartridge)
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.CCC", "").Kind, cartridgeloader.Cartridge)
	test.ExpectEquality(t, cartridgeloader.NewLoader("tape.wav", "").Kind, cartridgeloader.Tape)
	test.ExpectEquality(t, cartridgeloader.NewLoader("tape.mp3", "").Kind, cartridgeloader.Tape)
	test.ExpectEquality(t, cartridgeloader.NewLoader("tape.mp3", "cartridge").Kind, cartridgeloader.Cartridge)
	test.ExpectEquality(t, cartridgeloader.NewLoader("/roms/d32.rom", "").ShortName(), "d32")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{1, 2, 3, 4}, 0o644))

	cl := cartridgeloader.NewLoader(fn, "")
	test.ExpectFailure(t, cl.HasLoaded())
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 4)
	test.ExpectEquality(t, cl.Hash, "12dada1fff4d4787ade3333147202c3b443e376f")

	// the loader can be read like a file
	b, err := io.ReadAll(&cl)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(b), 4)
	_, err = cl.Seek(0, io.SeekStart)
	test.ExpectSuccess(t, err)

	// wrong hash
	cl = cartridgeloader.NewLoader(fn, "")
	cl.Hash = "0000"
	test.ExpectFailure(t, cl.Load())

	// missing file
	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"), "")
	test.ExpectFailure(t, cl.Load())

	// reading before loading
	_, err = cl.Read(make([]byte, 1))
	test.ExpectFailure(t, err)
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.dgn" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x39, 0x39})
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL+"/test.dgn", "")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Kind, cartridgeloader.Cartridge)
	test.ExpectEquality(t, len(cl.Data), 2)

	cl = cartridgeloader.NewLoader(srv.URL+"/missing.dgn", "")
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader("ftp://example.com/test.rom", "")
	test.ExpectFailure(t, cl.Load())
}
