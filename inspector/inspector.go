// This file is part of sdsim.
//
// sdsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdsim.  If not, see <https://www.gnu.org/licenses/>.

// Package inspector is an interactive pager over the written blocks of a
// disk. It puts the controlling terminal into cbreak mode, via
// "github.com/pkg/term/termios", so single keypresses move between blocks
// without waiting for a newline.
//
// Keys: n/space for the next block, p for the previous block, q to quit.
package inspector

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/dgiuliani/sdsim/curated"
	"github.com/dgiuliani/sdsim/disk"
)

// Inspector pages through the written blocks of a disk on a cbreak-mode
// terminal.
type Inspector struct {
	dsk *disk.Disk

	input  *os.File
	output *os.File

	// terminal attributes for canonical mode (how we found the terminal)
	// and for cbreak mode (how we run)
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// NewInspector is the preferred method of initialisation for the Inspector
// type. It fails if stdin is not attached to a terminal.
func NewInspector(dsk *disk.Disk) (*Inspector, error) {
	ins := &Inspector{
		dsk:    dsk,
		input:  os.Stdin,
		output: os.Stdout,
	}

	// prepare attributes for the two terminal modes we use. Tcgetattr fails
	// when input is a pipe or a file, which is how we notice there is no
	// terminal to inspect with
	if err := termios.Tcgetattr(ins.input.Fd(), &ins.canAttr); err != nil {
		return nil, curated.Errorf("inspector: %v", "stdin is not a terminal")
	}
	ins.cbreakAttr = ins.canAttr
	termios.Cfmakecbreak(&ins.cbreakAttr)

	return ins, nil
}

// Run the inspection loop. The terminal is returned to canonical mode
// before Run returns.
func (ins *Inspector) Run() error {
	addrs := ins.dsk.List()
	if len(addrs) == 0 {
		fmt.Fprintln(ins.output, "empty disk: nothing to inspect")
		return nil
	}

	if err := termios.Tcsetattr(ins.input.Fd(), termios.TCIFLUSH, &ins.cbreakAttr); err != nil {
		return curated.Errorf("inspector: %v", err)
	}
	defer termios.Tcsetattr(ins.input.Fd(), termios.TCIFLUSH, &ins.canAttr)

	idx := 0
	for {
		if err := ins.dsk.Dump(ins.output, addrs[idx]); err != nil {
			return curated.Errorf("inspector: %v", err)
		}
		fmt.Fprintf(ins.output, "[block %d of %d] (n)ext (p)rev (q)uit: ", idx+1, len(addrs))

		key := make([]byte, 1)
		if _, err := ins.input.Read(key); err != nil {
			return curated.Errorf("inspector: %v", err)
		}
		fmt.Fprintln(ins.output)

		switch key[0] {
		case 'n', ' ':
			if idx < len(addrs)-1 {
				idx++
			}
		case 'p':
			if idx > 0 {
				idx--
			}
		case 'q', 0x03, 0x04: // ctrl-c and ctrl-d also quit
			return nil
		}
	}
}
