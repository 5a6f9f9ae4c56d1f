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

package scheduler_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/rowtable"
	"github.com/CMU-SAFARI/ramulator-sub000/scheduler"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

// stubCtrl lets each test puppet exactly what a Queryable reports per
// request, keyed by the request's identity (pointer).
type stubCtrl struct {
	ready, rowHit, rowOpen map[*dram.Request]bool
	scope                  dram.Level
	table                  *rowtable.Table
}

func newStub() *stubCtrl {
	return &stubCtrl{
		ready:  map[*dram.Request]bool{},
		rowHit: map[*dram.Request]bool{},
		rowOpen: map[*dram.Request]bool{},
		scope:  dram.Bank,
		table:  rowtable.New(dram.Row),
	}
}

func (s *stubCtrl) IsReady(r *dram.Request) bool   { return s.ready[r] }
func (s *stubCtrl) IsRowHit(r *dram.Request) bool  { return s.rowHit[r] }
func (s *stubCtrl) IsRowOpen(r *dram.Request) bool { return s.rowOpen[r] }
func (s *stubCtrl) PrechargeScope() dram.Level     { return s.scope }
func (s *stubCtrl) RowTable() *rowtable.Table      { return s.table }

func req(arrive int64) *dram.Request { return &dram.Request{Arrive: arrive} }

func TestFCFSPicksEarliestArrival(t *testing.T) {
	stub := newStub()
	s := scheduler.New(scheduler.FCFS, stub)

	r1, r2, r3 := req(30), req(10), req(20)
	head := s.GetHead([]*dram.Request{r1, r2, r3})
	test.ExpectEquality(t, 1, head)
}

func TestFRFCFSPrefersReadyOverEarlierArrival(t *testing.T) {
	stub := newStub()
	s := scheduler.New(scheduler.FRFCFS, stub)

	earlier, ready := req(0), req(100)
	stub.ready[ready] = true

	head := s.GetHead([]*dram.Request{earlier, ready})
	test.ExpectEquality(t, 1, head)
}

func TestFRFCFSCapDeprioritizesRowOverCap(t *testing.T) {
	stub := newStub()
	s := scheduler.New(scheduler.FRFCFSCap, stub)
	s.Cap = 2

	overCap, other := req(0), req(10)
	stub.ready[overCap] = true
	stub.ready[other] = true
	overCap.AddrVec = []int{0, 0, -1, -1, 1, -1, 5, 0}
	other.AddrVec = []int{0, 0, -1, -1, 2, -1, 5, 0}

	stub.table.Update(fakeSpec{}, dram.ACT, overCap.AddrVec, 0)
	for i := 1; i <= 3; i++ {
		stub.table.Update(fakeSpec{}, dram.RD, overCap.AddrVec, int64(i))
	}

	// overCap has 3 hits (> Cap=2) so FRFCFSCap should prefer other despite
	// its later arrival.
	head := s.GetHead([]*dram.Request{overCap, other})
	test.ExpectEquality(t, other, []*dram.Request{overCap, other}[head])
}

func TestFRFCFSPriorHitPrefersRowHit(t *testing.T) {
	stub := newStub()
	s := scheduler.New(scheduler.FRFCFSPriorHit, stub)

	hit, miss := req(50), req(0)
	stub.ready[hit] = true
	stub.ready[miss] = true
	stub.rowHit[hit] = true
	hit.AddrVec = []int{0, 0, -1, -1, 1, -1, 5, 0}
	miss.AddrVec = []int{0, 0, -1, -1, 2, -1, 5, 0}

	head := s.GetHead([]*dram.Request{hit, miss})
	test.ExpectEquality(t, 0, head)
}

func TestGetHeadEmptyQueueReturnsNegativeOne(t *testing.T) {
	stub := newStub()
	s := scheduler.New(scheduler.FCFS, stub)
	test.ExpectEquality(t, -1, s.GetHead(nil))
}

func TestTypeString(t *testing.T) {
	test.ExpectEquality(t, "FCFS", scheduler.FCFS.String())
	test.ExpectEquality(t, "FRFCFS", scheduler.FRFCFS.String())
	test.ExpectEquality(t, "FRFCFS_Cap", scheduler.FRFCFSCap.String())
	test.ExpectEquality(t, "FRFCFS_PriorHit", scheduler.FRFCFSPriorHit.String())
}

// fakeSpec implements just enough of dram.Spec for rowtable.Table.Update.
type fakeSpec struct{ dram.Spec }

func (fakeSpec) IsOpening(cmd dram.Command) bool  { return cmd == dram.ACT }
func (fakeSpec) IsAccessing(cmd dram.Command) bool { return cmd == dram.RD || cmd == dram.WR }
func (fakeSpec) IsClosing(cmd dram.Command) bool   { return cmd == dram.PRE }
func (fakeSpec) Scope(cmd dram.Command) dram.Level { return dram.Bank }
