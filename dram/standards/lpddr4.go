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

// LPDDR4 (src/LPDDR4.h) defaults to per-bank refresh (REFPB) rather than
// REFAB. This port does not model per-bank refresh for it: a refresh
// request translates to a rank-level REF driven by the all-bank refresh
// engine. The Spec itself is the same state machine as LPDDR3 with
// tighter timing and a channel-count floor of 2, enforced below.
var lpddr4Speeds = map[string]ddrcommon.Timings{
	"LPDDR4_3200": {NBL: 8, NCCD: 8, NRTRS: 1, NCL: 24, NRCD: 24, NRP: 24, NCWL: 10,
		NRAS: 42, NRC: 66, NRTP: 8, NWTR: 8, NWR: 18, NRRD: 8, NFAW: 32, NRFC: 280, NREFI: 6240, NXP: 8, NXS: 280},
}

func NewLPDDR4(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := lpddr4Speeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: LPDDR4: unknown speed bin %q", speed)
	}
	if org != "LPDDR4_8Gb_x16" {
		return nil, curated.Errorf("standards: LPDDR4: unknown organization %q", org)
	}
	if channels < 2 {
		return nil, curated.Errorf("standards: LPDDR4: requires channels >= 2, got %d", channels)
	}

	counts := dram.Counts{PrefetchSize: 16, ChannelWidthBits: 16}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = 8
	counts.N[dram.Row] = 1 << 16
	counts.N[dram.Column] = 1 << 10

	cfg := ddrcommon.Config{
		StandardName: "LPDDR4",
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
