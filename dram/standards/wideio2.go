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

var wideio2Speeds = map[string]ddrcommon.Timings{
	"WideIO2_800": {NBL: 4, NCCD: 3, NRTRS: 1, NCL: 11, NRCD: 11, NRP: 11, NCWL: 5,
		NRAS: 25, NRC: 36, NRTP: 5, NWTR: 5, NWR: 10, NRRD: 4, NFAW: 16, NRFC: 90, NREFI: 1950, NXP: 4, NXS: 90},
}

// NewWideIO2 requires 4 or 8 channels.
func NewWideIO2(org, speed string, channels, ranks int) (dram.Spec, error) {
	t, ok := wideio2Speeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: WideIO2: unknown speed bin %q", speed)
	}
	if org != "WideIO2_8Gb_x64" {
		return nil, curated.Errorf("standards: WideIO2: unknown organization %q", org)
	}
	if channels != 4 && channels != 8 {
		return nil, curated.Errorf("standards: WideIO2: requires channels in {4,8}, got %d", channels)
	}

	counts := dram.Counts{PrefetchSize: 8, ChannelWidthBits: 64}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = 8
	counts.N[dram.Row] = 1 << 14
	counts.N[dram.Column] = 1 << 9

	cfg := ddrcommon.Config{
		StandardName: "WideIO2",
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
