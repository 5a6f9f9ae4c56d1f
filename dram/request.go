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

package dram

// Request is a single memory access as it moves through a channel's queues.
// Once enqueued the AddrVec is stable; Arrive <= Depart always holds and
// Callback, when set, fires exactly once.
type Request struct {
	Addr    int64
	Type    RequestType
	AddrVec []int // one entry per Level; -1 means wildcard

	Arrive int64
	Depart int64

	Callback func(*Request)

	IsFirstCommand bool

	// BurstCount, when above 1, is the number of times the completing CAS
	// is issued before the request is retired; controller.Tick honours it
	// for every standard, and 0 or 1 both mean a single issue.
	BurstCount int
}

// AddrAt returns the decoded address component at level, or -1 if the
// vector does not reach that deep (e.g. a request addressed only down to
// Bank has no Row/Column component).
func (r *Request) AddrAt(level Level) int {
	if int(level) >= len(r.AddrVec) {
		return -1
	}
	return r.AddrVec[level]
}
