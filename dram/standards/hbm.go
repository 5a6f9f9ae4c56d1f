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

var hbmSpeeds = map[string]ddrcommon.Timings{
	"HBM_1000": {NBL: 2, NCCD: 2, NRTRS: 1, NCL: 14, NRCD: 14, NRP: 14, NCWL: 5,
		NRAS: 28, NRC: 42, NRTP: 5, NWTR: 4, NWR: 9, NRRD: 4, NFAW: 16, NRFC: 160, NREFI: 3900, NXP: 4, NXS: 160},
}

// NewHBM requires exactly 8 channels: one per HBM pseudo channel of the
// base-die stack.
func NewHBM(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := hbmSpeeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: HBM: unknown speed bin %q", speed)
	}
	if org != "HBM_4Gb_x128" {
		return nil, curated.Errorf("standards: HBM: unknown organization %q", org)
	}
	if channels != 8 {
		return nil, curated.Errorf("standards: HBM: requires channels == 8, got %d", channels)
	}

	counts := dram.Counts{PrefetchSize: 2, ChannelWidthBits: 128}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.BankGroup] = 4
	counts.N[dram.Bank] = 4
	counts.N[dram.Row] = 1 << 14
	counts.N[dram.Column] = 1 << 6

	cfg := ddrcommon.Config{
		StandardName: "HBM",
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
