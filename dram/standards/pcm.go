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

// PCM (src/PCM.h) reuses the DDR ACT/PRE/RD/WR state machine even though
// the cell technology is phase-change memory: activation is a "sense"
// operation and write is asymmetric (much slower than read), modeled here
// simply as a larger nWR rather than a distinct command, matching the
// source's own approach of keeping PCM on the same Command enum as DDR3.
var pcmSpeeds = map[string]ddrcommon.Timings{
	"PCM_1333": {NBL: 4, NCCD: 4, NRTRS: 2, NCL: 9, NRCD: 9, NRP: 9, NCWL: 7,
		NRAS: 24, NRC: 33, NRTP: 5, NWTR: 5, NWR: 150, NRRD: 4, NFAW: 20, NRFC: 1, NREFI: 1 << 30, NXP: 4, NXS: 1},
}

// NewPCM builds a PCM spec. Refresh is effectively disabled (NREFI set to
// a huge value) since phase-change cells are non-volatile and the source
// never issues periodic REF for PCM.
func NewPCM(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := pcmSpeeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: PCM: unknown speed bin %q", speed)
	}
	if org != "PCM_4Gb_x8" {
		return nil, curated.Errorf("standards: PCM: unknown organization %q", org)
	}

	counts := dram.Counts{PrefetchSize: 8, ChannelWidthBits: 64}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = 8
	counts.N[dram.Row] = 1 << 16
	counts.N[dram.Column] = 1 << 10

	cfg := ddrcommon.Config{
		StandardName: "PCM",
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
