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

// generator polynomial for the CRC7 algorithm used by SD command and
// register framing. x^7 + x^3 + 1
const crc7Polynomial = 0x09

// CRC7 returns the 7 bit checksum of data, as used by SD command and
// register framing. The checksum is returned in the low 7 bits of the
// result.
//
// Initial value is zero. Bits are processed MSB first with no reflection
// and no final XOR. The checksum of the ASCII string "123456789" is 0x75.
func CRC7(data []byte) uint8 {
	var crc uint8

	for _, d := range data {
		for i := 0; i < 8; i++ {
			crc <<= 1
			if (d&0x80)^(crc&0x80) != 0 {
				crc ^= crc7Polynomial
			}
			d <<= 1
		}
	}

	return crc & 0x7f
}

// Trailer returns the final byte of a 128 bit SD register: the CRC7 checksum
// of the 120 bit payload shifted into the high 7 bits, with the low (stop)
// bit always set.
func Trailer(data []byte) byte {
	return CRC7(data)<<1 | 0x01
}
