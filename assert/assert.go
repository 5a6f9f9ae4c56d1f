// This file is part of ramulator-go.
//
// ramulator-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ramulator-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ramulator-go.  If not, see <https://www.gnu.org/licenses/>.

// Package assert contains invariant checks for conditions that must never
// occur on well-formed input. A failing assertion is a programmer error in
// the core timing engine (a command issued without its prerequisites having
// been satisfied, a row table that removed nothing on a closing command,
// and so on) rather than something a caller can usefully recover from, so
// these panic with a message that locates the violated invariant.
package assert

import "fmt"

// Require panics with a formatted message if cond is false. Use it to guard
// invariants that the core promises never to violate on well-formed input,
// for example "an issued command's timing check passed" or "a closing
// command removed at least one row table entry".
func Require(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
