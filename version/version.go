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

package version

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "sdsim"

// set through the linker with -ldflags during a release build. empty for a
// plain "go build"
var number string

// Version returns the version string of the project. The string
// "unreleased" means the project was built outside of the release process.
func Version() string {
	if number == "" {
		return "unreleased"
	}
	return number
}
