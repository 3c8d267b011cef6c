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

	"github.com/dgiuliani/sdsim/curated"
)

// sentinel error pattern for all field width problems in the registers
// package.
const InvalidFieldWidth = "registers: invalid field width: %v"

// RegisterLen is the length in bytes of an encoded SD register (CID or CSD).
const RegisterLen = 16

// payloadBits is the number of bits in a register payload, before the
// trailer byte.
const payloadBits = 120

// Field is a bit-width-tagged value. A register payload is the MSB first
// concatenation of its fields.
type Field struct {
	Name string

	// declared width in bits. the valid range for Value is decided by the
	// width, not the other way around
	Width int

	Value uint64
}

// Pack concatenates fields MSB first into a byte buffer. The aggregate
// width of the fields must be a whole number of bytes.
//
// An error is returned if a field value does not fit its declared width or
// if the aggregate width is not a multiple of eight.
func Pack(fields []Field) ([]byte, error) {
	var width int

	for _, f := range fields {
		if f.Width < 1 || f.Width > 64 {
			return nil, curated.Errorf(InvalidFieldWidth,
				fmt.Sprintf("%s: declared width of %d bits", f.Name, f.Width))
		}
		if f.Width < 64 && f.Value > (1<<uint(f.Width))-1 {
			return nil, curated.Errorf(InvalidFieldWidth,
				fmt.Sprintf("%s: value %#x does not fit in %d bits", f.Name, f.Value, f.Width))
		}
		width += f.Width
	}

	if width%8 != 0 {
		return nil, curated.Errorf(InvalidFieldWidth,
			fmt.Sprintf("fields total %d bits, not a whole number of bytes", width))
	}

	buf := make([]byte, width/8)

	idx := 0
	for _, f := range fields {
		for b := f.Width - 1; b >= 0; b-- {
			if f.Value>>uint(b)&0x01 == 0x01 {
				buf[idx>>3] |= 0x80 >> (idx & 0x07)
			}
			idx++
		}
	}

	return buf, nil
}

// packRegister packs fields into a register payload and appends the CRC7
// trailer. The aggregate field width must be exactly the 120 payload bits
// of an SD register.
func packRegister(fields []Field) ([]byte, error) {
	var width int
	for _, f := range fields {
		width += f.Width
	}
	if width != payloadBits {
		return nil, curated.Errorf(InvalidFieldWidth,
			fmt.Sprintf("fields total %d bits, register payload requires %d", width, payloadBits))
	}

	payload, err := Pack(fields)
	if err != nil {
		return nil, err
	}

	return append(payload, Trailer(payload)), nil
}
