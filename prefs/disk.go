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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written as the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while gopher86 is running ***"

// the separator between the key and value on each line of the preferences
// file
const separator = " :: "

// Curated error patterns returned by the Disk type.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	PrefsFileError = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add a preference value to the disk. The key should be unique.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) || strings.TrimSpace(key) != key || key == "" {
		return curated.Errorf(PrefsFileError, fmt.Errorf("illegal key (%q)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(PrefsFileError, fmt.Errorf("duplicate key (%s)", key))
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their default.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsFileError, err)
		}
	}
	return nil
}

// read the preferences file and return the key/value pairs. a missing file
// is not an error but the returned bool will be false
func (dsk *Disk) read() (map[string]string, bool, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, false, nil
		}
		return nil, false, curated.Errorf(PrefsFileError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line should be the warning boilerplate
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, true, curated.Errorf(PrefsFileError, fmt.Errorf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		values[k] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, true, curated.Errorf(PrefsFileError, err)
	}

	return values, true, nil
}

// Save current preference values to disk. Values in the preferences file that
// have not been added to this instance of Disk are preserved.
func (dsk *Disk) Save() error {
	values, _, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, values[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(PrefsFileError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(PrefsFileError, err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take priority over values on disk.
//
// If saveOnFail is true and the preferences file does not exist then the file
// is created with the current values. Otherwise a missing preferences file
// results in a NoPrefsFile error. Command line values are applied in either
// case.
func (dsk *Disk) Load(saveOnFail bool) error {
	values, exists, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		if v, ok := values[k]; ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf(PrefsFileError, err)
			}
			logger.Logf(logger.Allow, "prefs", "%s set to %s from command line", k, v)
		}
	}

	if !exists {
		if saveOnFail {
			return dsk.Save()
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}
