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

package disk

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dgiuliani/sdsim/curated"
	"github.com/dgiuliani/sdsim/logger"
)

// the address prefix of every dictionary record is a big-endian uint32.
const dictAddrLen = 4

// WriteDictionary writes the disk in the sparse dictionary format: one
// record per written block, each record being the 4 byte big-endian block
// address followed by the BlockSize bytes of content. There is no record
// count, delimiter or checksum; the reader consumes records until the
// stream ends.
//
// Records are written in ascending address order. An empty disk produces an
// empty (but valid) dictionary.
func (dsk *Disk) WriteDictionary(output io.Writer) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	var addr [dictAddrLen]byte

	for _, a := range dsk.list() {
		binary.BigEndian.PutUint32(addr[:], a)
		if _, err := output.Write(addr[:]); err != nil {
			return curated.Errorf("disk: %v", err)
		}
		if _, err := output.Write(dsk.blocks[a]); err != nil {
			return curated.Errorf("disk: %v", err)
		}
	}

	return nil
}

// ReadDictionary adds the records of a dictionary stream to the disk,
// replacing any block already written to a recorded address. Reading stops
// at a clean end-of-stream on a record boundary.
//
// A stream that ends part way through a record is reported as a corrupt
// dictionary. Records read before the corrupt one remain on the disk.
func (dsk *Disk) ReadDictionary(input io.Reader) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	var addr [dictAddrLen]byte

	for {
		_, err := io.ReadFull(input, addr[:])
		if err == io.EOF {
			// stream has ended on a record boundary
			return nil
		}
		if err != nil {
			return curated.Errorf(CorruptDictionary, "stream ends inside a block address")
		}

		a := binary.BigEndian.Uint32(addr[:])

		content := make([]byte, BlockSize)
		if _, err := io.ReadFull(input, content); err != nil {
			return curated.Errorf(CorruptDictionary,
				fmt.Sprintf("stream ends inside the block for address %d", a))
		}

		dsk.blocks[a] = content
	}
}

// ExportDictionary writes the dictionary, as described by WriteDictionary,
// to a new file. An existing file at the same path is truncated.
func (dsk *Disk) ExportDictionary(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("disk: %v", err)
	}

	err = dsk.WriteDictionary(f)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("disk: %v", err)
	}

	logger.Logf("disk", "dictionary exported to %s", path)

	return nil
}

// ImportDictionary adds the records of a dictionary file to the disk, as
// described by ReadDictionary.
func (dsk *Disk) ImportDictionary(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf("disk: %v", err)
	}
	defer f.Close()

	err = dsk.ReadDictionary(f)
	if err != nil {
		return err
	}

	logger.Logf("disk", "dictionary imported from %s", path)

	return nil
}
