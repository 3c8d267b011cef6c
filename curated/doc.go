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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the Errorf() function in
// the fmt package, and returns an error.
//
// The Is() function checks whether an error is a curated error with a given
// pattern. The pattern is what differentiates one curated error from
// another:
//
//	e := curated.Errorf("disk: invalid block size: %d", n)
//
//	if curated.Is(e, "disk: invalid block size: %d") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the outermost level.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference between curated
// and uncurated errors as the difference between 'expected' and 'unexpected'
// errors, depending on how the caller chooses to handle the result.
//
// The Error() implementation normalises the error chain so that it does not
// contain duplicate adjacent parts. Parts of a chain are separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that creates them.
package curated
