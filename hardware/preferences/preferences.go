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

package preferences

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/paths"
	"github.com/jetsetilly/gopher86/prefs"
)

// Default values of the hardware preferences.
const (
	DefaultMemorySize = 1024 * 1024
	DefaultEIP        = 0x7c00
	DefaultESP        = 0x7c00
	DefaultLoadOrigin = 0x7c00
	DefaultLoadSize   = 0x200
)

// Preferences defines and collates all the preference values used by the
// machine.
type Preferences struct {
	dsk *prefs.Disk

	MemorySize *prefs.Int
	EIP        *prefs.Int
	ESP        *prefs.Int
	LoadOrigin *prefs.Int

	// zero means load the entire program
	LoadSize *prefs.Int

	// zero means no limit
	InstructionLimit *prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the default preferences
// file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() except that the preferences
// are loaded from the named file. A missing file is not an error.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{
		MemorySize:       prefs.NewInt(DefaultMemorySize),
		EIP:              prefs.NewInt(DefaultEIP),
		ESP:              prefs.NewInt(DefaultESP),
		LoadOrigin:       prefs.NewInt(DefaultLoadOrigin),
		LoadSize:         prefs.NewInt(DefaultLoadSize),
		InstructionLimit: prefs.NewInt(0),
	}

	p.MemorySize.SetHookPre(inRange("memory size", 1, math.MaxInt32))
	p.EIP.SetHookPre(inRange("EIP", 0, math.MaxUint32))
	p.ESP.SetHookPre(inRange("ESP", 0, math.MaxUint32))
	p.LoadOrigin.SetHookPre(inRange("load origin", 0, math.MaxUint32))
	p.LoadSize.SetHookPre(inRange("load size", 0, math.MaxInt32))
	p.InstructionLimit.SetHookPre(inRange("instruction limit", 0, math.MaxInt))

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		v   *prefs.Int
	}{
		{"hardware.memory.size", p.MemorySize},
		{"hardware.cpu.eip", p.EIP},
		{"hardware.cpu.esp", p.ESP},
		{"hardware.load.origin", p.LoadOrigin},
		{"hardware.load.size", p.LoadSize},
		{"hardware.cpu.limit", p.InstructionLimit},
	} {
		err = p.dsk.Add(e.key, e.v)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func inRange(name string, min int, max int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		n := v.(int)
		if n < min || n > max {
			return fmt.Errorf("%s out of range (%d)", name, n)
		}
		return nil
	}
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Uint32 returns the value of an Int preference as an unsigned 32-bit value.
func Uint32(v *prefs.Int) uint32 {
	return uint32(v.Get().(int))
}
