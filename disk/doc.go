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

// Package disk is the storage side of the simulated SD card: a sparse
// store of 512 byte blocks keyed by block address.
//
// The important property of the Disk type is that reading a block that has
// never been written is not an error. It returns a block of zeroes, the
// same as reading erased media through a real card controller. Only
// explicit writes create entries in the store.
//
// A disk can be serialised two ways. WriteImage() emits a raw contiguous
// byte image covering the written address range, suitable for tools that
// expect a plain media image. WriteDictionary() emits the sparse dictionary
// format, one (address, content) record per written block, which
// round-trips through ReadDictionary() without losing the sparseness.
package disk
