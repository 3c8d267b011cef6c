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

// Package card composes the two halves of the SD card model, the identity
// registers and the block storage, into a single Card instance for a
// driving harness.
//
// The command/response state machine of a real card is not modelled here.
// A harness that simulates SD commands answers identity commands with the
// CID() and CSD() images and block commands with reads and writes on the
// card's Disk.
package card
