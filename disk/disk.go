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
	"fmt"
	"sort"
	"sync"

	"github.com/dgiuliani/sdsim/curated"
)

// BlockSize is the length in bytes of every block on the simulated media.
const BlockSize = 512

// sentinel error patterns for the disk package.
const (
	// content passed to Write() is not exactly BlockSize bytes.
	InvalidBlockSize = "disk: invalid block size: %v"

	// image export requested but no block has ever been written, so there
	// is no address range to cover.
	EmptyStore = "disk: empty store: no blocks have been written"

	// a dictionary stream ended part way through a record.
	CorruptDictionary = "disk: corrupt dictionary: %v"
)

// Disk is a sparse store of 512 byte blocks keyed by block address. Blocks
// that have never been written read back as zeroed media, the same as an
// erased flash sector. Written blocks are never individually deleted.
//
// Every Disk is an independent instance. All operations are guarded by a
// single mutex so a Disk can be shared by the goroutines of a driving
// harness.
type Disk struct {
	crit   sync.Mutex
	blocks map[uint32][]byte
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// new disk is empty.
func NewDisk() *Disk {
	return &Disk{
		blocks: make(map[uint32][]byte),
	}
}

// Write the content of a block to the disk, replacing any block previously
// written to the same address. The content must be exactly BlockSize bytes.
//
// The disk keeps its own copy of the content. Later changes to the supplied
// slice do not affect the stored block.
func (dsk *Disk) Write(addr uint32, content []byte) error {
	if len(content) != BlockSize {
		return curated.Errorf(InvalidBlockSize,
			fmt.Sprintf("%d bytes (block must be %d bytes)", len(content), BlockSize))
	}

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	b := make([]byte, BlockSize)
	copy(b, content)
	dsk.blocks[addr] = b

	return nil
}

// Read the block at the given address. A block that has never been written
// reads as BlockSize zero bytes. Read never fails: absence of a block is
// not an error, it is blank media.
//
// The returned slice is a copy and can be freely modified by the caller.
func (dsk *Disk) Read(addr uint32) []byte {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	return dsk.read(addr)
}

// read is the same as Read but the caller must be holding the critical
// section lock.
func (dsk *Disk) read(addr uint32) []byte {
	b := make([]byte, BlockSize)
	if stored, ok := dsk.blocks[addr]; ok {
		copy(b, stored)
	}
	return b
}

// NumBlocks returns the number of blocks that have been explicitly written.
// Blocks read through the zero-fill path do not count.
func (dsk *Disk) NumBlocks() int {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	return len(dsk.blocks)
}

// List returns the address of every block that has been explicitly written.
// The list is in ascending address order so repeated calls over the same
// disk produce the same output.
func (dsk *Disk) List() []uint32 {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	return dsk.list()
}

// list is the same as List but the caller must be holding the critical
// section lock.
func (dsk *Disk) list() []uint32 {
	addrs := make([]uint32, 0, len(dsk.blocks))
	for a := range dsk.blocks {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
