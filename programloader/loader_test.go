// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

package programloader_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/programloader"
	"github.com/jetsetilly/gopher86/test"
)

func writeProgram(t *testing.T, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeProgram(t, []uint8{0xb8, 0x29, 0x00, 0x00, 0x00})

	ld := programloader.NewLoader(fn)
	test.ExpectEquality(t, ld.Origin, uint32(0x7c00))
	test.ExpectEquality(t, ld.Size, 0x200)
	test.ExpectEquality(t, ld.HasLoaded(), false)
	test.ExpectEquality(t, ld.ShortName(), "program")

	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Data), 5)
	test.ExpectEquality(t, len(ld.Hash), 40)
	test.ExpectEquality(t, ld.String(), "program (5 bytes at 0x00007c00)")
}

func TestLoadTruncated(t *testing.T) {
	data := make([]uint8, 0x400)
	data[0x1ff] = 0xaa
	data[0x200] = 0xbb
	fn := writeProgram(t, data)

	ld := programloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 0x200)
	test.ExpectEquality(t, ld.Data[0x1ff], uint8(0xaa))

	// no maximum size
	ld = programloader.NewLoader(fn)
	ld.Size = 0
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 0x400)
}

func TestHash(t *testing.T) {
	fn := writeProgram(t, []uint8{0x90, 0xc3})

	ld := programloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	hash := ld.Hash

	// matching hash
	ld = programloader.NewLoader(fn)
	ld.Hash = hash
	test.ExpectSuccess(t, ld.Load())

	// mismatched hash
	ld = programloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectEquality(t, curated.Is(err, programloader.HashMismatch), true)
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestLoadErrors(t *testing.T) {
	ld := programloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	err := ld.Load()
	test.ExpectEquality(t, curated.Is(err, programloader.LoadError), true)

	ld = programloader.NewLoader(writeProgram(t, nil))
	err = ld.Load()
	test.ExpectEquality(t, curated.Is(err, programloader.LoadError), true)

	ld = programloader.NewLoader("ftp://example.com/program.bin")
	err = ld.Load()
	test.ExpectEquality(t, curated.Is(err, programloader.LoadError), true)
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/program.bin" {
			http.NotFound(w, r)
			return
		}
		w.Write([]uint8{0xeb, 0xfe})
	}))
	defer srv.Close()

	ld := programloader.NewLoader(fmt.Sprintf("%s/program.bin", srv.URL))
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 2)
	test.ExpectEquality(t, ld.Data[1], uint8(0xfe))

	ld = programloader.NewLoader(fmt.Sprintf("%s/missing.bin", srv.URL))
	test.ExpectFailure(t, ld.Load())
}

func TestFromData(t *testing.T) {
	ld := programloader.NewLoaderFromData("test", []uint8{0x90})
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Hash), 40)
}
