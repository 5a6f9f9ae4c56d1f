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

package rowpolicy_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/rowpolicy"
	"github.com/CMU-SAFARI/ramulator-sub000/rowtable"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

type fakeSpec struct{ dram.Spec }

func (fakeSpec) IsOpening(cmd dram.Command) bool   { return cmd == dram.ACT }
func (fakeSpec) IsAccessing(cmd dram.Command) bool { return cmd == dram.RD || cmd == dram.WR }
func (fakeSpec) IsClosing(cmd dram.Command) bool   { return cmd == dram.PRE }
func (fakeSpec) Scope(cmd dram.Command) dram.Level { return dram.Bank }

func alwaysReady(group []int) bool { return true }
func neverReady(group []int) bool  { return false }

func TestClosedPicksAnyOpenRowWhenReady(t *testing.T) {
	tbl := rowtable.New(dram.Row)
	tbl.Update(fakeSpec{}, dram.ACT, []int{0, 0, -1, -1, 1, -1, 5, 0}, 0)

	p := rowpolicy.New(rowpolicy.Closed)
	victim := p.Victim(tbl, 0, alwaysReady)
	if victim == nil {
		t.Fatalf("expected a victim row group, got nil")
	}
}

func TestClosedYieldsNothingWhenNotReady(t *testing.T) {
	tbl := rowtable.New(dram.Row)
	tbl.Update(fakeSpec{}, dram.ACT, []int{0, 0, -1, -1, 1, -1, 5, 0}, 0)

	p := rowpolicy.New(rowpolicy.Closed)
	victim := p.Victim(tbl, 0, neverReady)
	test.Equate(t, []int(nil), victim)
}

func TestOpenedNeverPrecharges(t *testing.T) {
	tbl := rowtable.New(dram.Row)
	tbl.Update(fakeSpec{}, dram.ACT, []int{0, 0, -1, -1, 1, -1, 5, 0}, 0)

	p := rowpolicy.New(rowpolicy.Opened)
	victim := p.Victim(tbl, 1000, alwaysReady)
	test.Equate(t, []int(nil), victim)
}

func TestTimeoutWaitsOutIdlePeriod(t *testing.T) {
	tbl := rowtable.New(dram.Row)
	tbl.Update(fakeSpec{}, dram.ACT, []int{0, 0, -1, -1, 1, -1, 5, 0}, 0)

	p := rowpolicy.New(rowpolicy.Timeout)
	p.TimeoutClk = 10

	test.Equate(t, []int(nil), p.Victim(tbl, 5, alwaysReady))
	if v := p.Victim(tbl, 10, alwaysReady); v == nil {
		t.Fatalf("expected a victim row group once the timeout has elapsed, got nil")
	}
}

func TestTypeString(t *testing.T) {
	test.ExpectEquality(t, "Closed", rowpolicy.Closed.String())
	test.ExpectEquality(t, "ClosedAP", rowpolicy.ClosedAP.String())
	test.ExpectEquality(t, "Opened", rowpolicy.Opened.String())
	test.ExpectEquality(t, "Timeout", rowpolicy.Timeout.String())
}
