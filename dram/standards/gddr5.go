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

package standards

import (
	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/ddrcommon"
)

// GDDR5 (src/GDDR5.h) adds a BankGroup level like DDR4; reuse the same
// pass-through approximation documented in ddr4.go.
var gddr5Speeds = map[string]ddrcommon.Timings{
	"GDDR5_6000": {NBL: 8, NCCD: 4, NRTRS: 2, NCL: 18, NRCD: 18, NRP: 18, NCWL: 5,
		NRAS: 33, NRC: 51, NRTP: 6, NWTR: 6, NWR: 14, NRRD: 6, NFAW: 23, NRFC: 77, NREFI: 1950, NXP: 5, NXS: 77},
}

func NewGDDR5(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := gddr5Speeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: GDDR5: unknown speed bin %q", speed)
	}
	if org != "GDDR5_2Gb_x16" {
		return nil, curated.Errorf("standards: GDDR5: unknown organization %q", org)
	}

	counts := dram.Counts{PrefetchSize: 8, ChannelWidthBits: 16}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.BankGroup] = 4
	counts.N[dram.Bank] = 4
	counts.N[dram.Row] = 1 << 14
	counts.N[dram.Column] = 1 << 9

	cfg := ddrcommon.Config{
		StandardName: "GDDR5",
		HasBankGroup: true,
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.BankGroup, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
