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

package salp_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/salp"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

func testTimings() salp.Timings {
	return salp.Timings{
		NBL: 4, NCCD: 4, NRTRS: 2,
		NCL: 11, NRCD: 11, NRP: 11, NCWL: 8,
		NRAS: 28, NRC: 39,
		NRTP: 6, NWTR: 6, NWR: 12,
		NRRD: 5, NFAW: 24,
		NRFCpb: 64, NRFCab: 160,
		NREFIpb: 1560, NREFIab: 6240,
		NXP: 5, NXS: 512,
	}
}

func newSALPSpec(t *testing.T, variant salp.Variant) (dram.Spec, *dram.Node) {
	t.Helper()
	spec, err := salp.New(salp.Config{
		Variant: variant, Channels: 1, Ranks: 1, Banks: 2, SubArrays: 4, Rows: 1 << 14, Cols: 1 << 10,
		T: testTimings(),
	})
	if err != nil {
		t.Fatalf("salp.New: %v", err)
	}
	root := dram.Build(spec, spec.Levels(), 0, spec.Counts())
	return spec, root
}

func TestNewRejectsNonPowerOfTwoSubArrays(t *testing.T) {
	_, err := salp.New(salp.Config{Variant: salp.SALP1, Channels: 1, Ranks: 1, Banks: 1, SubArrays: 3, Rows: 1, Cols: 1, T: testTimings()})
	if err == nil {
		t.Fatalf("expected an error for a non-power-of-two subarray count")
	}
}

// SALP's whole point: two subarrays in the same bank can be open on
// different rows simultaneously, unlike a plain DDR bank where opening a
// second row forces the first closed.
func TestIndependentSubArraysStayOpenSimultaneously(t *testing.T) {
	_, root := newSALPSpec(t, salp.SALPMASA)
	bank := root.Children()[0].Children()[0]

	addrSA0 := []int{0, 0, -1, -1, 0, 0, 3, 0}
	addrSA1 := []int{0, 0, -1, -1, 0, 1, 7, 0}
	root.Update(dram.ACT, addrSA0, 0)
	root.Update(dram.ACT, addrSA1, 1)

	sa0 := bank.Children()[0]
	sa1 := bank.Children()[1]
	test.ExpectEquality(t, dram.Opened, sa0.State())
	test.ExpectEquality(t, dram.Opened, sa1.State())
	rs0, ok0 := sa0.RowState(3)
	rs1, ok1 := sa1.RowState(7)
	test.Equate(t, true, ok0)
	test.Equate(t, true, ok1)
	test.ExpectEquality(t, dram.Opened, rs0)
	test.ExpectEquality(t, dram.Opened, rs1)
}

// DSARP/SALP-MASA refresh one bank at a time (REFPB); a rank-wide REF is
// never issued, and REFPB for a bank with any open subarray is deferred
// behind a PRE rather than issued directly.
func TestDSARPIsPerBankRefresh(t *testing.T) {
	spec, root := newSALPSpec(t, salp.DSARP)
	dsarp, ok := spec.(interface{ IsPerBank() bool })
	if !ok || !dsarp.IsPerBank() {
		t.Fatalf("expected DSARP to report per-bank refresh")
	}
	test.ExpectEquality(t, dram.REFPB, spec.Translate(dram.ReqRefresh))

	bank := root.Children()[0].Children()[0]
	addr := []int{0, 0, -1, -1, 0, 0, 2, 0}
	root.Update(dram.ACT, addr, 0)

	test.ExpectEquality(t, dram.PRE, root.Decode(dram.REFPB, addr))

	root.Update(dram.PRE, addr, 40)
	test.ExpectEquality(t, dram.Closed, bank.Children()[0].State())
	test.ExpectEquality(t, dram.REFPB, root.Decode(dram.REFPB, addr))
}

// SALP-1/SALP-2 refresh the whole rank at once and share the same
// REF-forces-PREA-first prerequisite as a plain DDR rank.
func TestSALP1UsesRankWideRefresh(t *testing.T) {
	spec, root := newSALPSpec(t, salp.SALP1)
	test.ExpectEquality(t, dram.REF, spec.Translate(dram.ReqRefresh))

	addr := []int{0, 0, -1, -1, 0, 0, 2, 0}
	root.Update(dram.ACT, addr, 0)
	test.ExpectEquality(t, dram.PREA, root.Decode(dram.REF, addr))
}
