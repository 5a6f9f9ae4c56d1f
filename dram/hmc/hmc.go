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

// Package hmc builds the dram.Spec for the vault-level Hybrid Memory Cube
// hierarchy (src/HMC.h): Channel -> Vault -> BankGroup -> Bank, the same
// closed/open bank state machine as DDR4 with Vault standing in for
// Rank. This port models no link/packet layer and no no-DRAM-latency
// mode; a request's BurstCount is handled by the generic controller.Tick,
// and controller/hmc.go's NewHMC is plain controller.New.
package hmc

import (
	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/ddrcommon"
)

var speeds = map[string]ddrcommon.Timings{
	"HMC_2500": {NBL: 2, NCCD: 2, NRTRS: 1, NCL: 12, NRCD: 12, NRP: 12, NCWL: 5,
		NRAS: 24, NRC: 35, NRTP: 4, NWTR: 4, NWR: 8, NRRD: 4, NFAW: 14, NRFC: 140, NREFI: 3900, NXP: 4, NXS: 140},
}

// NewHMC builds an HMC Spec. vaults is the per-cube vault count (the
// "channel" count seen by the rest of the core).
func NewHMC(org, speed string, vaults, banksPerGroup, groups int) (dram.Spec, error) {
	t, ok := speeds[speed]
	if !ok {
		return nil, curated.Errorf("hmc: unknown speed bin %q", speed)
	}
	if org != "HMC_4GB_x32" {
		return nil, curated.Errorf("hmc: unknown organization %q", org)
	}

	counts := dram.Counts{PrefetchSize: 2, ChannelWidthBits: 32}
	counts.N[dram.Channel] = vaults
	counts.N[dram.Vault] = 1 // one vault-root per Channel node; vaults are modeled as independent channels
	counts.N[dram.BankGroup] = groups
	counts.N[dram.Bank] = banksPerGroup
	counts.N[dram.Row] = 1 << 16
	counts.N[dram.Column] = 1 << 6

	cfg := ddrcommon.Config{
		StandardName: "HMC",
		HasBankGroup: true,
		Levels:       []dram.Level{dram.Channel, dram.Vault, dram.BankGroup, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
