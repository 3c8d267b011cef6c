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

package registers

import (
	"fmt"
	"unicode"

	"github.com/dgiuliani/sdsim/curated"
)

// pnmLen is the length of the product name field in bytes.
const pnmLen = 5

// CID is the card identification register. The field layout follows the SD
// physical layer specification: manufacturer ID (8 bits), OEM/application
// ID (16 bits), product name (5 ASCII characters), product revision (8
// bits), serial number (32 bits), reserved (4 bits) and manufacturing date
// (12 bits).
type CID struct {
	MID uint8
	OID uint16

	// product name. must be exactly 5 ASCII characters
	PNM string

	PRV uint8
	PSN uint32

	// reserved field between the serial number and the manufacturing date.
	// 4 bits, should be zero
	RSV uint8

	// manufacturing date. 12 bits: year offset from 2000 in the high 8
	// bits, month in the low 4
	MDT uint16
}

// NewCID returns the CID of the reference card: the identity fields of a
// Kingston SDCIT industrial card.
func NewCID() CID {
	return CID{
		MID: 0x41,
		OID: 0x3432,
		PNM: "SDCIT",
		PRV: 0x30,
		PSN: 0x12345678,
		RSV: 0x0,
		MDT: 0x112,
	}
}

// Encode the CID register. The returned slice is always exactly 16 bytes:
// the 120 bit field concatenation followed by the CRC7 trailer.
func (cid CID) Encode() ([]byte, error) {
	// the product name cannot be treated like the numeric fields. check it
	// byte-wise before packing
	if len(cid.PNM) != pnmLen {
		return nil, curated.Errorf(InvalidFieldWidth,
			fmt.Sprintf("PNM: %q is not exactly %d characters", cid.PNM, pnmLen))
	}

	var pnm uint64
	for _, c := range cid.PNM {
		if c > unicode.MaxASCII {
			return nil, curated.Errorf(InvalidFieldWidth,
				fmt.Sprintf("PNM: %q contains a non-ASCII character", cid.PNM))
		}
		pnm = pnm<<8 | uint64(c)
	}

	return packRegister([]Field{
		{Name: "MID", Width: 8, Value: uint64(cid.MID)},
		{Name: "OID", Width: 16, Value: uint64(cid.OID)},
		{Name: "PNM", Width: 40, Value: pnm},
		{Name: "PRV", Width: 8, Value: uint64(cid.PRV)},
		{Name: "PSN", Width: 32, Value: uint64(cid.PSN)},
		{Name: "RSV", Width: 4, Value: uint64(cid.RSV)},
		{Name: "MDT", Width: 12, Value: uint64(cid.MDT)},
	})
}
