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

// Package registers encodes the identity registers of an SD card: the card
// identification register (CID) and the card specific data register (CSD).
//
// Both registers are 128 bits long: a 120 bit payload of fixed-width fields
// followed by an 8 bit trailer. The trailer is the CRC7 checksum of the
// payload shifted left by one bit with the low bit always set. Field layout
// and widths follow part 1 of the SD specifications (physical layer).
//
// The CID and CSD types describe a register through named fields. Encode()
// packs the fields MSB first into the 16 byte register image, failing with
// an invalid field width error if a field value does not fit the width
// allotted to it. Encoding is deterministic and has no side effects.
//
// The zero value of either type is a register full of zeroed fields. Use
// NewCID() and NewCSD() for the values of the reference card modelled by
// this project (a Kingston SDCIT industrial card).
package registers
