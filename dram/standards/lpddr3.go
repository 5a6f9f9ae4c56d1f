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

// LPDDR3 shares DDR3's ACT/PRE/RD/WR/REF state machine (src/LPDDR3.h); its
// org/speed tables are kept to a single representative bin, per the
// project's scope decision to give full per-bin fidelity only to DDR3 and
// DDR4 (see DESIGN.md).
var lpddr3Speeds = map[string]ddrcommon.Timings{
	"LPDDR3_1600": {NBL: 4, NCCD: 4, NRTRS: 1, NCL: 12, NRCD: 12, NRP: 12, NCWL: 6,
		NRAS: 30, NRC: 42, NRTP: 5, NWTR: 6, NWR: 10, NRRD: 6, NFAW: 25, NRFC: 130, NREFI: 3120, NXP: 5, NXS: 130},
}

func NewLPDDR3(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := lpddr3Speeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: LPDDR3: unknown speed bin %q", speed)
	}
	if org != "LPDDR3_4Gb_x32" {
		return nil, curated.Errorf("standards: LPDDR3: unknown organization %q", org)
	}

	counts := dram.Counts{PrefetchSize: 8, ChannelWidthBits: 32}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = 8
	counts.N[dram.Row] = 1 << 15
	counts.N[dram.Column] = 1 << 10

	cfg := ddrcommon.Config{
		StandardName: "LPDDR3",
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
