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

package dump

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher86/hardware/cpu"
	"github.com/jetsetilly/gopher86/hardware/cpu/execution"
	"github.com/jetsetilly/gopher86/hardware/cpu/registers"
)

const (
	header = "------[registers]------\n"
	footer = "-----------------------\n"
)

// Registers writes the general purpose registers, the EIP and a summary of
// the flags to io.Writer.
func Registers(output io.Writer, mc *cpu.CPU) error {
	if _, err := io.WriteString(output, header); err != nil {
		return err
	}

	for r := registers.EAX; r < registers.NumRegisters; r++ {
		if _, err := fmt.Fprintf(output, "[%s] %08x\n", r, mc.Regs.Get(r)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(output, "[EIP] %s\n", mc.EIP); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(output, "[FLG] %s\n", mc.Flags); err != nil {
		return err
	}

	_, err := io.WriteString(output, footer)
	return err
}

type register struct {
	Name  string
	Value string
}

// graph is the structure passed to memviz. the CPU type itself isn't used
// because the handler and definition tables would swamp the output.
type graph struct {
	EIP        string
	Flags      string
	Registers  []register
	LastResult *execution.Result
}

// Graph writes the state of the CPU as a Graphviz dot graph.
func Graph(output io.Writer, mc *cpu.CPU) {
	g := graph{
		EIP:   mc.EIP.String(),
		Flags: fmt.Sprintf("%s (%04x)", mc.Flags, mc.Flags.Value()),
	}

	for r := registers.EAX; r < registers.NumRegisters; r++ {
		g.Registers = append(g.Registers, register{
			Name:  r.String(),
			Value: fmt.Sprintf("%08x", mc.Regs.Get(r)),
		})
	}

	if mc.LastResult.Final {
		r := mc.LastResult
		g.LastResult = &r
	}

	memviz.Map(output, &g)
}
