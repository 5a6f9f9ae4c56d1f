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

package standards_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/standards"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

func TestNewDDR3RejectsUnknownOrgAndSpeed(t *testing.T) {
	if _, err := standards.NewDDR3("bogus", "DDR3_1600K", 1, 1); err == nil {
		t.Fatalf("expected an error for an unknown organization")
	}
	if _, err := standards.NewDDR3("DDR3_2Gb_x8", "bogus", 1, 1); err == nil {
		t.Fatalf("expected an error for an unknown speed bin")
	}
}

// DDR4 inserts a BankGroup level between Rank and Bank; ACT/PRE must still
// scope to Bank and RD/WR to Column the same way DDR3's plain Rank->Bank
// tree does, and the tree must actually instantiate BankGroup nodes.
func TestNewDDR4BuildsBankGroupLevel(t *testing.T) {
	spec, err := standards.NewDDR4("DDR4_4Gb_x8", "DDR4_2400R", 1, 1)
	if err != nil {
		t.Fatalf("NewDDR4: %v", err)
	}
	test.ExpectEquality(t, dram.Bank, spec.Scope(dram.ACT))
	test.ExpectEquality(t, dram.Column, spec.Scope(dram.RD))

	root := dram.Build(spec, spec.Levels(), 0, spec.Counts())
	rank := root.Children()[0]
	test.ExpectEquality(t, dram.BankGroup, rank.Children()[0].Level())
	if got := len(rank.Children()[0].Children()); got != 4 {
		t.Fatalf("expected 4 banks per group, got %d", got)
	}

	addr := []int{0, 0, -1, 0, 2, -1, 5, 0}
	root.Update(dram.ACT, addr, 0)
	bank := rank.Children()[0].Children()[2]
	test.ExpectEquality(t, dram.Opened, bank.State())
}

func TestNewLPDDR4EnforcesChannelFloor(t *testing.T) {
	if _, err := standards.NewLPDDR4("LPDDR4_8Gb_x16", "LPDDR4_3200", 1, 1); err == nil {
		t.Fatalf("expected an error for fewer than 2 channels")
	}
	spec, err := standards.NewLPDDR4("LPDDR4_8Gb_x16", "LPDDR4_3200", 2, 1)
	if err != nil {
		t.Fatalf("NewLPDDR4: %v", err)
	}
	test.ExpectEquality(t, dram.Column, spec.Scope(dram.WR))
}

// PCM keeps the plain DDR command set but models its asymmetric write cost
// as a much larger nWR, and disables periodic refresh by setting NREFI to
// an effectively unreachable interval.
func TestNewPCMDisablesRefresh(t *testing.T) {
	spec, err := standards.NewPCM("PCM_4Gb_x8", "PCM_1333", 1, 1)
	if err != nil {
		t.Fatalf("NewPCM: %v", err)
	}
	withNREFI, ok := spec.(interface{ NREFI() int })
	if !ok {
		t.Fatalf("expected PCM's Spec to expose NREFI")
	}
	if withNREFI.NREFI() < 1<<29 {
		t.Fatalf("expected PCM's refresh interval to be effectively disabled, got %d", withNREFI.NREFI())
	}
}

func TestNewALDRAMRejectsUnknownSpeed(t *testing.T) {
	if _, err := standards.NewALDRAM("ALDRAM_4Gb_x8", "bogus", 1, 1); err == nil {
		t.Fatalf("expected an error for an unknown speed bin")
	}
}

// ALDRAM is the one standard whose timing table depends on operating
// temperature: RefreshTiming swaps in a wider nRAS/nRP/nRFC table under
// High temperature and reports the change; a repeated call at the same
// temperature reports no change.
func TestALDRAMSwapsTimingTableByTemperature(t *testing.T) {
	spec, err := standards.NewALDRAM("ALDRAM_4Gb_x8", "ALDRAM_1600", 1, 1)
	if err != nil {
		t.Fatalf("NewALDRAM: %v", err)
	}
	normalRAS := spec.Timing(dram.Bank, dram.ACT)

	if changed := spec.RefreshTiming(dram.Environment{Temperature: dram.TempNormal}); changed {
		t.Fatalf("switching to the already-active Normal table should report no change")
	}
	if changed := spec.RefreshTiming(dram.Environment{Temperature: dram.TempHigh}); !changed {
		t.Fatalf("switching to High temperature should report a change")
	}
	highRAS := spec.Timing(dram.Bank, dram.ACT)

	var normalPRE, highPRE int
	for _, e := range normalRAS {
		if e.Cmd == dram.PRE {
			normalPRE = e.Val
		}
	}
	for _, e := range highRAS {
		if e.Cmd == dram.PRE {
			highPRE = e.Val
		}
	}
	if highPRE <= normalPRE {
		t.Fatalf("expected High temperature's nRAS (%d) to exceed Normal's (%d)", highPRE, normalPRE)
	}
}
