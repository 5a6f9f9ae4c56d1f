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

// Package rowpolicy picks which open row, if any, to precharge ahead of
// schedule. Grounded on original_source/src/Scheduler.h's RowPolicy: four
// policies (Closed, ClosedAP, Opened, Timeout) selectable independently of
// the request scheduler.
package rowpolicy

import "github.com/CMU-SAFARI/ramulator-sub000/rowtable"

type Type int

const (
	Closed Type = iota
	ClosedAP
	Opened
	Timeout
)

func (t Type) String() string {
	switch t {
	case Closed:
		return "Closed"
	case ClosedAP:
		return "ClosedAP"
	case Opened:
		return "Opened"
	case Timeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Ready reports whether cmd (typically PRE) can be issued right now
// against the given row group's address vector; supplied by the
// controller since readiness depends on per-command timing state the
// policy itself doesn't track.
type Ready func(group []int) bool

type Policy struct {
	Type       Type
	TimeoutClk int64 // cycles of idleness required under Timeout
}

func New(t Type) *Policy {
	return &Policy{Type: t, TimeoutClk: 50}
}

// Victim returns the address-vector prefix of the row group to precharge,
// or nil if none should be precharged now. clk is the controller's
// current cycle (needed only by Timeout).
func (p *Policy) Victim(table *rowtable.Table, clk int64, ready Ready) []int {
	switch p.Type {
	case Closed, ClosedAP:
		var victim []int
		table.Each(func(group []int, e *rowtable.Entry) {
			if victim != nil || !ready(group) {
				return
			}
			victim = group
		})
		return victim

	case Opened:
		return nil

	case Timeout:
		var victim []int
		table.Each(func(group []int, e *rowtable.Entry) {
			if victim != nil {
				return
			}
			if clk-e.Timestamp < p.TimeoutClk {
				return
			}
			if !ready(group) {
				return
			}
			victim = group
		})
		return victim

	default:
		return nil
	}
}
