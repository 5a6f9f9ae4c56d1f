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

// src/STTMRAM.h's init_speed sets nRFC=1 for its 1600 rate: a
// "refresh-free" approximation for a non-volatile cell that is left
// unreconciled with nREFI in the original source. This is preserved
// rather than silently "fixed" to a DRAM-typical value, so nRFC stays at
// 1 here even though nREFI is a normal cadence.
var sttmramSpeeds = map[string]ddrcommon.Timings{
	"STTMRAM_1600": {NBL: 4, NCCD: 4, NRTRS: 2, NCL: 11, NRCD: 11, NRP: 11, NCWL: 8,
		NRAS: 28, NRC: 39, NRTP: 6, NWTR: 6, NWR: 20, NRRD: 5, NFAW: 24, NRFC: 1, NREFI: 6240, NXP: 5, NXS: 1},
}

func NewSTTMRAM(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := sttmramSpeeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: STTMRAM: unknown speed bin %q", speed)
	}
	if org != "STTMRAM_4Gb_x8" {
		return nil, curated.Errorf("standards: STTMRAM: unknown organization %q", org)
	}

	counts := dram.Counts{PrefetchSize: 8, ChannelWidthBits: 64}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = 8
	counts.N[dram.Row] = 1 << 16
	counts.N[dram.Column] = 1 << 10

	cfg := ddrcommon.Config{
		StandardName: "STTMRAM",
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
