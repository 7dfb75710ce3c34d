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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/logger"
)

// Curated error patterns returned by the Load() function.
const (
	LoadError    = "programloader: %v"
	HashMismatch = "programloader: unexpected hash value (%s)"
)

// Default values for the Loader type.
const (
	DefaultOrigin = 0x7c00
	DefaultSize   = 0x200
)

// Loader is used to specify the program to attach to the machine.
type Loader struct {
	// filename or URL of the program to load
	Filename string

	// address in memory the program should be copied to
	Origin uint32

	// the maximum number of bytes to load. data beyond this size is ignored.
	// a value of zero means there is no maximum
	Size int

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Origin:   DefaultOrigin,
		Size:     DefaultSize,
	}
}

// NewLoaderFromData creates a Loader with data that has already been loaded.
// Useful for testing and for programs that have been assembled in memory.
func NewLoaderFromData(name string, data []uint8) Loader {
	ld := NewLoader(name)
	ld.Data = data
	ld.Size = 0
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	return ld
}

func (ld Loader) String() string {
	return fmt.Sprintf("%s (%d bytes at 0x%08x)", ld.ShortName(), len(ld.Data), ld.Origin)
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var r io.Reader

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Errorf("%s", resp.Status))
		}
		r = resp.Body

	case "file", "":
		f, err := os.Open(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer f.Close()
		r = f

	default:
		return curated.Errorf(LoadError, fmt.Errorf("unsupported URL scheme (%s)", scheme))
	}

	if ld.Size > 0 {
		r = io.LimitReader(r, int64(ld.Size))
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if len(data) == 0 {
		return curated.Errorf(LoadError, fmt.Errorf("empty program (%s)", ld.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch, hash)
	}

	ld.Data = data
	ld.Hash = hash

	logger.Logf(logger.Allow, "programloader", "loaded %d bytes from %s", len(ld.Data), ld.Filename)
	logger.Logf(logger.Allow, "programloader", "sha1 %s", ld.Hash)

	return nil
}
