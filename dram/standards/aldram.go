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

// ALDRAM (src/ALDRAM.h/.cpp's aldram_timing(Temp)) is the one standard
// whose timing table depends on operating temperature: at High
// temperature nRAS/nRP/nRFC widen relative to Normal. Everywhere else in
// this package RefreshTiming is a no-op; ALDRAM is the only Spec that
// exercises it.
var aldramNormal = ddrcommon.Timings{
	NBL: 4, NCCD: 4, NRTRS: 2, NCL: 11, NRCD: 11, NRP: 11, NCWL: 8,
	NRAS: 28, NRC: 39, NRTP: 6, NWTR: 6, NWR: 12, NRRD: 5, NFAW: 24, NRFC: 160, NREFI: 6240, NXP: 5, NXS: 512,
}

var aldramHigh = ddrcommon.Timings{
	NBL: 4, NCCD: 4, NRTRS: 2, NCL: 11, NRCD: 11, NRP: 14, NCWL: 8,
	NRAS: 34, NRC: 45, NRTP: 6, NWTR: 6, NWR: 12, NRRD: 5, NFAW: 24, NRFC: 208, NREFI: 3120, NXP: 5, NXS: 512,
}

type aldramSpec struct {
	cfgBase dram.Spec
	cfgHigh dram.Spec
	current dram.Spec
}

func (a *aldramSpec) Name() string                                     { return a.current.Name() }
func (a *aldramSpec) Levels() []dram.Level                              { return a.current.Levels() }
func (a *aldramSpec) Counts() dram.Counts                               { return a.current.Counts() }
func (a *aldramSpec) Scope(cmd dram.Command) dram.Level                 { return a.current.Scope(cmd) }
func (a *aldramSpec) Translate(t dram.RequestType) dram.Command         { return a.current.Translate(t) }
func (a *aldramSpec) Start(level dram.Level) dram.State                 { return a.current.Start(level) }
func (a *aldramSpec) IsOpening(cmd dram.Command) bool                   { return a.current.IsOpening(cmd) }
func (a *aldramSpec) IsAccessing(cmd dram.Command) bool                 { return a.current.IsAccessing(cmd) }
func (a *aldramSpec) IsClosing(cmd dram.Command) bool                   { return a.current.IsClosing(cmd) }
func (a *aldramSpec) IsRefreshing(cmd dram.Command) bool                { return a.current.IsRefreshing(cmd) }
func (a *aldramSpec) Prereq(n *dram.Node, cmd dram.Command, id int) dram.Command {
	return a.current.Prereq(n, cmd, id)
}
func (a *aldramSpec) Lambda(n *dram.Node, cmd dram.Command, id int) { a.current.Lambda(n, cmd, id) }
func (a *aldramSpec) RowHit(n *dram.Node, cmd dram.Command, id int) bool {
	return a.current.RowHit(n, cmd, id)
}
func (a *aldramSpec) RowOpen(n *dram.Node, cmd dram.Command, id int) bool {
	return a.current.RowOpen(n, cmd, id)
}
func (a *aldramSpec) Timing(level dram.Level, cmd dram.Command) []dram.TimingEntry {
	return a.current.Timing(level, cmd)
}
func (a *aldramSpec) ReadLatency() int { return a.current.ReadLatency() }

// NREFI delegates to whichever ddrcommon.Config is currently active: the
// Normal table's NREFI is 6240 and the High table's is 3120, so the
// refresh interval halves at High temperature.
func (a *aldramSpec) NREFI() int {
	if ii, ok := a.current.(interface{ NREFI() int }); ok {
		return ii.NREFI()
	}
	return 0
}

// RefreshTiming switches the active timing table by Environment.Temperature
// and reports whether the active table actually changed.
func (a *aldramSpec) RefreshTiming(env dram.Environment) bool {
	want := a.cfgBase
	if env.Temperature == dram.TempHigh {
		want = a.cfgHigh
	}
	if want == a.current {
		return false
	}
	a.current = want
	return true
}

func NewALDRAM(org, speed string, channels, ranks int) (dram.Spec, error) {
	if speed != "ALDRAM_1600" {
		return nil, curated.Errorf("standards: ALDRAM: unknown speed bin %q", speed)
	}
	if org != "ALDRAM_4Gb_x8" {
		return nil, curated.Errorf("standards: ALDRAM: unknown organization %q", org)
	}

	counts := dram.Counts{PrefetchSize: 8, ChannelWidthBits: 64}
	counts.N[dram.Channel] = channels
	counts.N[dram.Rank] = ranks
	counts.N[dram.Bank] = 8
	counts.N[dram.Row] = 1 << 16
	counts.N[dram.Column] = 1 << 10

	base := ddrcommon.Build(ddrcommon.Config{StandardName: "ALDRAM", Levels: []dram.Level{dram.Channel, dram.Rank, dram.Bank}, Counts: counts, T: aldramNormal})
	high := ddrcommon.Build(ddrcommon.Config{StandardName: "ALDRAM", Levels: []dram.Level{dram.Channel, dram.Rank, dram.Bank}, Counts: counts, T: aldramHigh})
	return &aldramSpec{cfgBase: base, cfgHigh: high, current: base}, nil
}
