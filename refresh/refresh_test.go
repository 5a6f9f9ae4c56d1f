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

package refresh_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/standards"
	"github.com/CMU-SAFARI/ramulator-sub000/logger"
	"github.com/CMU-SAFARI/ramulator-sub000/refresh"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

type fakeInjector struct {
	enqueued []*dram.Request
	ranks    []int
}

func (f *fakeInjector) ChannelID() int                 { return 0 }
func (f *fakeInjector) RankIDs() []int                 { return f.ranks }
func (f *fakeInjector) Enqueue(req *dram.Request) bool { f.enqueued = append(f.enqueued, req); return true }

// fakeQueueView is a controllable refresh.QueueView test double standing
// in for *controller.Controller.
type fakeQueueView struct {
	anyPendingRefresh bool
	readQueueEmpty    bool
	busyBanks         map[int]bool
	pendingBanks      map[int]bool
	otherQueueFull    bool
}

func (v *fakeQueueView) ReadQueueEmpty() bool         { return v.readQueueEmpty }
func (v *fakeQueueView) AnyPendingRefresh() bool      { return v.anyPendingRefresh }
func (v *fakeQueueView) OtherQueueFull() bool         { return v.otherQueueFull }
func (v *fakeQueueView) BankBusy(rank, bank int) bool { return v.busyBanks[bank] }
func (v *fakeQueueView) BankPendingRefresh(rank, bank int) bool { return v.pendingBanks[bank] }

func idleView() *fakeQueueView {
	return &fakeQueueView{
		anyPendingRefresh: false,
		readQueueEmpty:    true,
		busyBanks:         map[int]bool{},
		pendingBanks:      map[int]bool{},
	}
}

func busyView() *fakeQueueView {
	return &fakeQueueView{
		anyPendingRefresh: true,
		readQueueEmpty:    false,
		busyBanks:         map[int]bool{},
		pendingBanks:      map[int]bool{},
	}
}

func TestEngineInjectsRefreshOncePerInterval(t *testing.T) {
	spec, err := standards.NewDDR3("DDR3_2Gb_x8", "DDR3_1600K", 1, 2)
	if err != nil {
		t.Fatalf("NewDDR3: %v", err)
	}
	inj := &fakeInjector{ranks: []int{0, 1}}
	log := logger.NewLogger(16)
	eng := refresh.New(inj, spec, log, logger.NewTopics("refresh"))
	eng.SetInterval(5)

	for i := 0; i < 5; i++ {
		eng.Tick(dram.Environment{})
	}
	test.ExpectEquality(t, 2, len(inj.enqueued)) // one REF per rank

	inj.enqueued = nil
	for i := 0; i < 4; i++ {
		eng.Tick(dram.Environment{})
	}
	test.ExpectEquality(t, 0, len(inj.enqueued)) // interval hasn't elapsed again yet

	eng.Tick(dram.Environment{})
	test.ExpectEquality(t, 2, len(inj.enqueued))
}

func TestDSARPEngineRoundRobinsBanks(t *testing.T) {
	inj := &fakeInjector{ranks: []int{0}}
	log := logger.NewLogger(16)
	// dsarp=false: SALP-MASA's plain per-bank round robin, unconditional.
	eng := refresh.NewDSARP(inj, 1, 4, 1, false, log, logger.NewTopics("refresh"))

	view := busyView() // must be ignored entirely since dsarp is off
	for i := 0; i < 8; i++ {
		eng.Tick(1, true, view) // nrefipb=1: a REFPB fires every tick
	}
	test.ExpectEquality(t, 8, len(inj.enqueued))
}

func TestDSARPEngineSkipsRefreshWhileBusyThenCatchesUpAtBacklogFloor(t *testing.T) {
	inj := &fakeInjector{ranks: []int{0}}
	log := logger.NewLogger(16)
	eng := refresh.NewDSARP(inj, 1, 1, 1, true, log, logger.NewTopics("refresh"))

	view := busyView() // otherq non-empty and readq non-empty: never an idle opportunity
	for i := 0; i < 7; i++ {
		eng.Tick(1, true, view) // writeMode=true disables early pull-in entirely
	}
	test.ExpectEquality(t, 0, len(inj.enqueued)) // skipped every interval so far

	eng.Tick(1, true, view) // 8th decrement drives backlog to the floor, forcing the refresh
	test.ExpectEquality(t, 1, len(inj.enqueued))
	test.ExpectEquality(t, dram.ReqRefresh, inj.enqueued[0].Type)
	test.ExpectEquality(t, 0, inj.enqueued[0].AddrAt(dram.Bank))
}

func TestDSARPEngineEarlyPullInRefreshesIdleBank(t *testing.T) {
	inj := &fakeInjector{ranks: []int{0}}
	log := logger.NewLogger(16)
	eng := refresh.NewDSARP(inj, 1, 1, 3, true, log, logger.NewTopics("refresh"))

	// Run the backlog down to -7 without letting early pull-in fire, by
	// keeping writeMode true and the queue busy the whole time.
	busy := busyView()
	for i := 0; i < 7; i++ {
		eng.Tick(1, true, busy)
	}
	test.ExpectEquality(t, 0, len(inj.enqueued))

	// Flip to read mode with the controller otherwise idle, and make the
	// refresh interval itself unreachable this cycle: only the early
	// pull-in path can be responsible for any request enqueued now.
	idle := idleView()
	eng.Tick(1000, false, idle)
	test.ExpectEquality(t, 1, len(inj.enqueued))
	test.ExpectEquality(t, dram.ReqRefresh, inj.enqueued[0].Type)
	test.ExpectEquality(t, 0, inj.enqueued[0].AddrAt(dram.Bank))
}
