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

var wideioSpeeds = map[string]ddrcommon.Timings{
	"WideIO_266": {NBL: 4, NCCD: 2, NRTRS: 1, NCL: 7, NRCD: 7, NRP: 7, NCWL: 4,
		NRAS: 18, NRC: 25, NRTP: 4, NWTR: 4, NWR: 8, NRRD: 3, NFAW: 12, NRFC: 64, NREFI: 1040, NXP: 3, NXS: 64},
}

// NewWideIO requires exactly 4 channels: WideIO's package is physically
// one stack of 4 independent channels.
func NewWideIO(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := wideioSpeeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: WideIO: unknown speed bin %q", speed)
	}
	if org != "WideIO_8Gb_x128" {
		return nil, curated.Errorf("standards: WideIO: unknown organization %q", org)
	}
	if channels != 4 {
		return nil, curated.Errorf("standards: WideIO: requires channels == 4, got %d", channels)
	}

	counts := dram.Counts{PrefetchSize: 4, ChannelWidthBits: 128}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = 4
	counts.N[dram.Row] = 1 << 14
	counts.N[dram.Column] = 1 << 9

	cfg := ddrcommon.Config{
		StandardName: "WideIO",
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
