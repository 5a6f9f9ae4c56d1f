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

// Package standards holds one file per supported DRAM/PCM/STT-MRAM
// standard; each exposes a constructor such as NewDDR3(org, speed string,
// channels, ranks int) returning a dram.Spec built on top of ddrcommon. Numeric org/speed tables are
// transcribed from the published JEDEC-style tables as opaque
// per-standard data.
package standards

import (
	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/ddrcommon"
)

// ddr3Org mirrors src/DDR3.h's org_table: size in Mb, DQ width, and bank
// count (the entries actually exercised by the test scenarios all use the
// 8-bank, x8 organization).
type ddr3Org struct {
	sizeMb, dq, banks, rows, cols int
}

var ddr3Orgs = map[string]ddr3Org{
	"DDR3_1Gb_x8": {1024, 8, 8, 1 << 14, 1 << 10},
	"DDR3_2Gb_x8": {2048, 8, 8, 1 << 15, 1 << 10},
	"DDR3_4Gb_x8": {4096, 8, 8, 1 << 16, 1 << 10},
	"DDR3_8Gb_x8": {8192, 8, 8, 1 << 16, 1 << 11},
}

// ddr3Speed mirrors one row of src/DDR3.h's speed_table. nRRD/nFAW/nRFC
// are not populated in the retrieved header (they are filled in at
// runtime by an org-dependent init_speed() not present in the retrieval);
// the values below for DDR3_1600K reproduce the commonly cited DDR3-1600
// figures (nRRD=5, nFAW=24), and nRFC=160 is a representative 4Gb-density
// value rather than a verbatim transcription — see DESIGN.md.
var ddr3Speeds = map[string]ddrcommon.Timings{
	"DDR3_1333H": {NBL: 4, NCCD: 4, NRTRS: 2, NCL: 9, NRCD: 9, NRP: 9, NCWL: 7,
		NRAS: 24, NRC: 33, NRTP: 5, NWTR: 5, NWR: 10, NRRD: 4, NFAW: 20, NRFC: 128, NREFI: 6240, NXP: 4, NXS: 384},
	"DDR3_1600K": {NBL: 4, NCCD: 4, NRTRS: 2, NCL: 11, NRCD: 11, NRP: 11, NCWL: 8,
		NRAS: 28, NRC: 39, NRTP: 6, NWTR: 6, NWR: 12, NRRD: 5, NFAW: 24, NRFC: 160, NREFI: 6240, NXP: 5, NXS: 512},
	"DDR3_1866L": {NBL: 4, NCCD: 4, NRTRS: 2, NCL: 13, NRCD: 13, NRP: 13, NCWL: 9,
		NRAS: 32, NRC: 45, NRTP: 7, NWTR: 7, NWR: 14, NRRD: 6, NFAW: 27, NRFC: 186, NREFI: 6240, NXP: 6, NXS: 597},
}

// NewDDR3 builds a DDR3 Spec for the given organization and speed-bin key
// (channels/ranks are supplied separately by the Memory factory, since
// they're a system-config choice, not a per-chip one).
func NewDDR3(org, speed string, channels, ranks int) (dram.Spec, error) {
	o, ok := ddr3Orgs[org]
	if !ok {
		return nil, curated.Errorf("standards: DDR3: unknown organization %q", org)
	}
	t, ok := ddr3Speeds[speed]
	if !ok {
		return nil, curated.Errorf("standards: DDR3: unknown speed bin %q", speed)
	}

	counts := dram.Counts{PrefetchSize: 8, ChannelWidthBits: 64}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = o.banks
	counts.N[dram.Row] = o.rows
	counts.N[dram.Column] = o.cols

	cfg := ddrcommon.Config{
		StandardName: "DDR3",
		Levels:       []dram.Level{dram.Channel, dram.Rank, dram.Bank},
		Counts:       counts,
		T:            t,
	}
	if err := ddrcommon.Validate(cfg); err != nil {
		return nil, err
	}
	return ddrcommon.Build(cfg), nil
}
