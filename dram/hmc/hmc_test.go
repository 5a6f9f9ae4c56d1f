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

package hmc_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/hmc"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

func TestNewHMCRejectsUnknownOrgAndSpeed(t *testing.T) {
	if _, err := hmc.NewHMC("bogus", "HMC_2500", 1, 4, 2); err == nil {
		t.Fatalf("expected an error for an unknown organization")
	}
	if _, err := hmc.NewHMC("HMC_4GB_x32", "bogus", 1, 4, 2); err == nil {
		t.Fatalf("expected an error for an unknown speed bin")
	}
}

// Each vault gets its own independently-built tree (the memory factory
// builds one per channel/vault the same way); activating a bank in one
// vault's tree must not affect the same address in a different vault's
// tree.
func TestVaultsAreIndependentChannels(t *testing.T) {
	spec, err := hmc.NewHMC("HMC_4GB_x32", "HMC_2500", 2, 4, 2)
	if err != nil {
		t.Fatalf("NewHMC: %v", err)
	}
	vault0 := dram.Build(spec, spec.Levels(), 0, spec.Counts())
	vault1 := dram.Build(spec, spec.Levels(), 0, spec.Counts())

	addr := []int{0, -1, 0, 0, 1, -1, 9, 0}
	vault0.Update(dram.ACT, addr, 0)

	bank0 := vault0.Children()[0].Children()[0].Children()[1]
	bank1 := vault1.Children()[0].Children()[0].Children()[1]
	test.ExpectEquality(t, dram.Opened, bank0.State())
	test.ExpectEquality(t, dram.Closed, bank1.State())
}
