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

package ports

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher86/logger"
)

// Port is implemented by devices attached to the port bus.
type Port interface {
	In() (uint8, error)
	Out(data uint8) error
}

// Bus connects ports to devices. It implements the cpubus.Ports interface.
type Bus struct {
	devices map[uint16]Port

	// unmapped ports that have been accessed. used to limit logging
	unmapped map[uint16]bool
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		devices:  make(map[uint16]Port),
		unmapped: make(map[uint16]bool),
	}
}

func (bus *Bus) String() string {
	p := make([]int, 0, len(bus.devices))
	for k := range bus.devices {
		p = append(p, int(k))
	}
	sort.Ints(p)

	s := strings.Builder{}
	for i, k := range p {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(fmt.Sprintf("%04x: %v", k, bus.devices[uint16(k)]))
	}
	return s.String()
}

// Attach a device to a port. Any device already at the port is replaced. A
// nil device detaches the port.
func (bus *Bus) Attach(port uint16, dev Port) {
	if dev == nil {
		delete(bus.devices, port)
		return
	}
	bus.devices[port] = dev
}

// In implements the cpubus.Ports interface.
func (bus *Bus) In(port uint16) (uint8, error) {
	if dev, ok := bus.devices[port]; ok {
		return dev.In()
	}
	bus.logUnmapped(port, "read")
	return 0, nil
}

// Out implements the cpubus.Ports interface.
func (bus *Bus) Out(port uint16, data uint8) error {
	if dev, ok := bus.devices[port]; ok {
		return dev.Out(data)
	}
	bus.logUnmapped(port, "write")
	return nil
}

func (bus *Bus) logUnmapped(port uint16, access string) {
	if bus.unmapped[port] {
		return
	}
	bus.unmapped[port] = true
	logger.Logf(logger.Allow, "ports", "%s of unmapped port %04x", access, port)
}
