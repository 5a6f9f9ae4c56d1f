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

// Package tldram implements TLDRAM's two-segment bank (src/TLDRAM.h/.cpp):
// every bank has a small "fast" segment (ACTF/PREF, tighter nRCD/nRAS) and
// a "main" segment (ACTM/PREM, ordinary timing); MIG copies a row from
// main into fast. The controller specialization that decides *when* to
// reclassify a READ as an EXTENSION/MIG request lives in
// controller/tldram.go; this package only declares the state machine and
// timing the two segments obey.
package tldram

import (
	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
)

type Timings struct {
	NBL, NCCD, NRTRS int
	NCL, NCWL        int
	// Fast segment.
	NRCDf, NRPf, NRASf, NRCf int
	// Main segment.
	NRCDm, NRPm, NRASm, NRCm int
	NRTP, NWTR, NWR          int
	NRRD, NFAW               int
	NRFC, NREFI              int
	NMIG                     int // cycles to copy one row main->fast
}

type Config struct {
	Channels, Ranks, Banks int
	Rows, Cols             int
	T                      Timings
}

type spec struct {
	cfg Config
	// fastRow tracks, per bank node, which row id currently occupies the
	// fast segment slot (-1 if none); migration moves a row here.
	fastRow map[*dram.Node]int
}

func New(cfg Config) (dram.Spec, error) {
	if cfg.Banks <= 0 {
		return nil, curated.Errorf("tldram: banks must be positive, got %d", cfg.Banks)
	}
	return &spec{cfg: cfg, fastRow: make(map[*dram.Node]int)}, nil
}

func (s *spec) Name() string { return "TLDRAM" }

func (s *spec) Levels() []dram.Level { return []dram.Level{dram.Channel, dram.Rank, dram.Bank} }

func (s *spec) Counts() dram.Counts {
	var c dram.Counts
	c.PrefetchSize = 8
	c.ChannelWidthBits = 64
	c.N[dram.Channel] = s.cfg.Channels
	c.N[dram.Rank] = s.cfg.Ranks
	c.N[dram.Bank] = s.cfg.Banks
	c.N[dram.Row] = s.cfg.Rows
	c.N[dram.Column] = s.cfg.Cols
	return c
}

func (s *spec) ReadLatency() int                    { return s.cfg.T.NCL + s.cfg.T.NBL }
func (s *spec) RefreshTiming(dram.Environment) bool { return false }

// NREFI exposes the all-bank refresh interval the same way ddrcommon does,
// so refresh.Engine can be configured without a type switch per standard.
func (s *spec) NREFI() int { return s.cfg.T.NREFI }

func (s *spec) Scope(cmd dram.Command) dram.Level {
	switch cmd {
	case dram.ACTF, dram.ACTM, dram.PREF, dram.PREM, dram.MIG, dram.PRE:
		return dram.Bank
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		return dram.Column
	case dram.PREA:
		return dram.Rank
	case dram.REF:
		return dram.Rank
	case dram.PDE, dram.PDX, dram.SRE, dram.SRX:
		return dram.Rank
	default:
		return dram.Rank
	}
}

func (s *spec) Translate(t dram.RequestType) dram.Command {
	switch t {
	case dram.ReqRead:
		return dram.RD
	case dram.ReqWrite:
		return dram.WR
	case dram.ReqRefresh:
		return dram.REF
	case dram.ReqExtension:
		return dram.MIG
	case dram.ReqPowerDown:
		return dram.PDE
	case dram.ReqSelfRefresh:
		return dram.SRE
	default:
		return dram.RD
	}
}

func (s *spec) Start(level dram.Level) dram.State {
	switch level {
	case dram.Rank:
		return dram.PowerUp
	case dram.Bank:
		return dram.Closed
	default:
		return dram.NoState
	}
}

func (s *spec) IsOpening(cmd dram.Command) bool {
	return cmd == dram.ACT || cmd == dram.ACTF || cmd == dram.ACTM
}
func (s *spec) IsAccessing(cmd dram.Command) bool {
	switch cmd {
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		return true
	}
	return false
}
func (s *spec) IsClosing(cmd dram.Command) bool {
	switch cmd {
	case dram.RDA, dram.WRA, dram.PRE, dram.PREA, dram.PREF, dram.PREM:
		return true
	}
	return false
}
func (s *spec) IsRefreshing(cmd dram.Command) bool { return cmd == dram.REF }

func (s *spec) Prereq(n *dram.Node, cmd dram.Command, childID int) dram.Command {
	switch n.Level() {
	case dram.Rank:
		switch cmd {
		case dram.RD, dram.WR:
			if n.State() == dram.PowerUp {
				return cmd
			}
			return dram.PDX
		case dram.REF:
			for _, b := range n.Children() {
				if b.State() != dram.Closed {
					return dram.PREA
				}
			}
			return dram.REF
		}
	case dram.Bank:
		switch cmd {
		case dram.RD, dram.WR, dram.RDA, dram.WRA:
			switch n.State() {
			case dram.Closed:
				if s.fastRow[n] == childID {
					return dram.ACTF
				}
				return dram.ACTM
			case dram.Opened:
				if rs, ok := n.RowState(childID); ok && rs == dram.Opened {
					return cmd
				}
				if s.fastRow[n] == childID {
					return dram.PREF
				}
				return dram.PREM
			}
		}
	}
	return cmd
}

func (s *spec) Lambda(n *dram.Node, cmd dram.Command, childID int) {
	switch n.Level() {
	case dram.Rank:
		switch cmd {
		case dram.PREA:
			n.ClearRowState()
			for _, b := range n.Children() {
				b.SetState(dram.Closed)
				b.ClearRowState()
			}
		}
	case dram.Bank:
		switch cmd {
		case dram.ACTF, dram.ACTM:
			n.SetState(dram.Opened)
			n.SetRowState(childID, dram.Opened)
		case dram.PREF, dram.PREM, dram.PRE, dram.RDA, dram.WRA:
			n.SetState(dram.Closed)
			n.ClearRowState()
		case dram.MIG:
			if _, wasFast := s.fastRow[n]; wasFast {
				delete(s.fastRow, n)
			}
			s.fastRow[n] = childID
		}
	}
}

func (s *spec) RowHit(n *dram.Node, cmd dram.Command, childID int) bool {
	if n.Level() != dram.Bank {
		return false
	}
	if n.State() != dram.Opened {
		return false
	}
	rs, ok := n.RowState(childID)
	return ok && rs == dram.Opened
}

func (s *spec) RowOpen(n *dram.Node, cmd dram.Command, childID int) bool {
	return n.Level() == dram.Bank && n.State() == dram.Opened
}

func (s *spec) Timing(level dram.Level, cmd dram.Command) []dram.TimingEntry {
	t := s.cfg.T
	switch level {
	case dram.Rank:
		switch cmd {
		case dram.ACTF:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NRRD}, {Cmd: dram.PREA, Dist: 1, Val: t.NRASf}}
		case dram.ACTM:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NRRD}, {Cmd: dram.PREA, Dist: 1, Val: t.NRASm}}
		case dram.REF:
			return []dram.TimingEntry{{Cmd: dram.ACTF, Dist: 1, Val: t.NRFC}, {Cmd: dram.ACTM, Dist: 1, Val: t.NRFC}}
		}
	case dram.Bank:
		switch cmd {
		case dram.ACTF:
			return []dram.TimingEntry{
				{Cmd: dram.RD, Dist: 1, Val: t.NRCDf},
				{Cmd: dram.WR, Dist: 1, Val: t.NRCDf},
				{Cmd: dram.PREF, Dist: 1, Val: t.NRASf},
			}
		case dram.ACTM:
			return []dram.TimingEntry{
				{Cmd: dram.RD, Dist: 1, Val: t.NRCDm},
				{Cmd: dram.WR, Dist: 1, Val: t.NRCDm},
				{Cmd: dram.PREM, Dist: 1, Val: t.NRASm},
			}
		case dram.PREF:
			return []dram.TimingEntry{{Cmd: dram.ACTF, Dist: 1, Val: t.NRPf}, {Cmd: dram.ACTM, Dist: 1, Val: t.NRPf}}
		case dram.PREM:
			return []dram.TimingEntry{{Cmd: dram.ACTF, Dist: 1, Val: t.NRPm}, {Cmd: dram.ACTM, Dist: 1, Val: t.NRPm}}
		case dram.RD:
			return []dram.TimingEntry{{Cmd: dram.PREF, Dist: 1, Val: t.NRTP}, {Cmd: dram.PREM, Dist: 1, Val: t.NRTP}}
		case dram.WR:
			return []dram.TimingEntry{{Cmd: dram.PREF, Dist: 1, Val: t.NCWL + t.NBL + t.NWR}, {Cmd: dram.PREM, Dist: 1, Val: t.NCWL + t.NBL + t.NWR}}
		case dram.MIG:
			return []dram.TimingEntry{{Cmd: dram.ACTF, Dist: 1, Val: t.NMIG}, {Cmd: dram.RD, Dist: 1, Val: t.NMIG}, {Cmd: dram.WR, Dist: 1, Val: t.NMIG}}
		}
	}
	return nil
}
