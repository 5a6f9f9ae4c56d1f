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

// Package ddrcommon builds a dram.Spec shared by every "plain" closed/open
// bank-buffer standard: DDR3, DDR4, LPDDR3, LPDDR4, GDDR5, WideIO, WideIO2,
// HBM and PCM/STT-MRAM (which reuse the JEDEC-style ACT/PRE/RD/WR state
// machine even though their cells aren't DRAM). Only the numeric Timing
// table and the organization/level counts differ standard to standard;
// the prerequisite, lambda and row-hit tables below are the one reusable
// core, grounded on src/DSARP.cpp's init_prereq/init_lambda/init_rowhit
// (DSARP's own state machine is the DDR3 one, specialized only for
// subarrays — this file is that specialization stripped back out).
package ddrcommon

import (
	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
)

// Timings holds every JEDEC parameter referenced by the shared timing
// table, in DRAM cycles (tCK units), as published by a standard's
// per-speed-bin SpeedEntry.
type Timings struct {
	NBL, NCCD, NRTRS      int
	NCL, NRCD, NRP, NCWL  int
	NRAS, NRC             int
	NRTP, NWTR, NWR       int
	NRRD, NFAW            int
	NRFC, NREFI           int
	NXP, NXS              int
}

// Config describes one organization+speed instantiation of a plain
// standard.
type Config struct {
	StandardName string
	HasBankGroup bool
	Levels       []dram.Level // root-first, e.g. {Channel,Rank,Bank} or {Channel,Rank,BankGroup,Bank}
	Counts       dram.Counts
	T            Timings
}

type spec struct {
	cfg Config
}

// Build returns a dram.Spec for a plain JEDEC-style standard.
func Build(cfg Config) dram.Spec {
	return &spec{cfg: cfg}
}

func (s *spec) Name() string        { return s.cfg.StandardName }
func (s *spec) Levels() []dram.Level { return s.cfg.Levels }
func (s *spec) Counts() dram.Counts { return s.cfg.Counts }
func (s *spec) ReadLatency() int    { return s.cfg.T.NCL + s.cfg.T.NBL }

// NREFI exposes the all-bank refresh interval so refresh.Engine can be
// configured without knowing this package's Timings layout.
func (s *spec) NREFI() int { return s.cfg.T.NREFI }

func (s *spec) RefreshTiming(dram.Environment) bool { return false }

// rankLevel returns the level in this Spec's hierarchy that plays the
// "rank" role — Rank itself for every standard except HMC, whose vault
// stack occupies the same structural position.
func (s *spec) rankLevel() dram.Level {
	if len(s.cfg.Levels) > 1 && s.cfg.Levels[1] == dram.Vault {
		return dram.Vault
	}
	return dram.Rank
}

func (s *spec) Scope(cmd dram.Command) dram.Level {
	switch cmd {
	case dram.ACT:
		return dram.Bank
	case dram.PRE:
		return dram.Bank
	case dram.PREA:
		return s.rankLevel()
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		return dram.Column
	case dram.REF:
		return s.rankLevel()
	case dram.PDE, dram.PDX, dram.SRE, dram.SRX:
		return s.rankLevel()
	default:
		return s.rankLevel()
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
	case dram.Rank, dram.Vault:
		return dram.PowerUp
	case dram.BankGroup, dram.Bank:
		return dram.Closed
	default:
		return dram.NoState
	}
}

func (s *spec) IsOpening(cmd dram.Command) bool  { return cmd == dram.ACT }
func (s *spec) IsAccessing(cmd dram.Command) bool {
	switch cmd {
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		return true
	}
	return false
}
func (s *spec) IsClosing(cmd dram.Command) bool {
	switch cmd {
	case dram.RDA, dram.WRA, dram.PRE, dram.PREA:
		return true
	}
	return false
}
func (s *spec) IsRefreshing(cmd dram.Command) bool { return cmd == dram.REF }

// Prereq is node-state-driven exactly as src/DSARP.cpp's init_prereq,
// minus the subarray level: a Rank gates RD/WR/PDE/SRE on its own power
// state and REF on whether any of its direct children is still open, and
// a Bank gates RD/WR on whether the addressed row is already open.
func (s *spec) Prereq(n *dram.Node, cmd dram.Command, childID int) dram.Command {
	switch n.Level() {
	case dram.Rank, dram.Vault:
		switch cmd {
		case dram.RD, dram.WR:
			switch n.State() {
			case dram.PowerUp:
				return cmd
			case dram.ActPowerDown, dram.PrePowerDown:
				return dram.PDX
			case dram.SelfRefresh:
				return dram.SRX
			}
		case dram.REF:
			for _, b := range n.Children() {
				if b.State() != dram.Closed {
					return dram.PREA
				}
			}
			return dram.REF
		case dram.PDE:
			switch n.State() {
			case dram.SelfRefresh:
				return dram.SRX
			default:
				return dram.PDE
			}
		case dram.SRE:
			switch n.State() {
			case dram.ActPowerDown, dram.PrePowerDown:
				return dram.PDX
			default:
				return dram.SRE
			}
		}
	case dram.Bank:
		switch cmd {
		case dram.RD, dram.WR, dram.RDA, dram.WRA:
			switch n.State() {
			case dram.Closed:
				return dram.ACT
			case dram.Opened:
				if rs, ok := n.RowState(childID); ok && rs == dram.Opened {
					return cmd
				}
				return dram.PRE
			}
		}
	}
	return cmd
}

func (s *spec) Lambda(n *dram.Node, cmd dram.Command, childID int) {
	switch n.Level() {
	case dram.Rank, dram.Vault:
		switch cmd {
		case dram.PREA:
			n.ClearRowState()
			for _, b := range n.Children() {
				b.SetState(dram.Closed)
				b.ClearRowState()
			}
		case dram.PDE:
			for _, b := range n.Children() {
				if b.State() != dram.Closed {
					n.SetState(dram.ActPowerDown)
					return
				}
			}
			n.SetState(dram.PrePowerDown)
		case dram.PDX:
			n.SetState(dram.PowerUp)
		case dram.SRE:
			n.SetState(dram.SelfRefresh)
		case dram.SRX:
			n.SetState(dram.PowerUp)
		}
	case dram.BankGroup:
		// bank groups carry no state of their own in the plain model;
		// all state lives at Bank.
	case dram.Bank:
		switch cmd {
		case dram.ACT:
			n.SetState(dram.Opened)
			n.SetRowState(childID, dram.Opened)
		case dram.PRE:
			n.SetState(dram.Closed)
			n.ClearRowState()
		case dram.RDA, dram.WRA:
			n.SetState(dram.Closed)
			n.ClearRowState()
		}
	}
}

func (s *spec) RowHit(n *dram.Node, cmd dram.Command, childID int) bool {
	if n.Level() != dram.Bank {
		return false
	}
	switch cmd {
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		if n.State() != dram.Opened {
			return false
		}
		rs, ok := n.RowState(childID)
		return ok && rs == dram.Opened
	}
	return false
}

func (s *spec) RowOpen(n *dram.Node, cmd dram.Command, childID int) bool {
	if n.Level() != dram.Bank {
		return false
	}
	switch cmd {
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		return n.State() == dram.Opened
	}
	return false
}

func (s *spec) Timing(level dram.Level, cmd dram.Command) []dram.TimingEntry {
	t := s.cfg.T
	switch level {
	case dram.Channel:
		switch cmd {
		case dram.RD:
			return []dram.TimingEntry{{Cmd: dram.RD, Dist: 1, Val: t.NBL}, {Cmd: dram.RDA, Dist: 1, Val: t.NBL}}
		case dram.RDA:
			return []dram.TimingEntry{{Cmd: dram.RD, Dist: 1, Val: t.NBL}, {Cmd: dram.RDA, Dist: 1, Val: t.NBL}}
		case dram.WR:
			return []dram.TimingEntry{{Cmd: dram.WR, Dist: 1, Val: t.NBL}, {Cmd: dram.WRA, Dist: 1, Val: t.NBL}}
		case dram.WRA:
			return []dram.TimingEntry{{Cmd: dram.WR, Dist: 1, Val: t.NBL}, {Cmd: dram.WRA, Dist: 1, Val: t.NBL}}
		}
	case dram.Rank, dram.Vault:
		switch cmd {
		case dram.RD:
			return []dram.TimingEntry{
				{Cmd: dram.RD, Dist: 1, Val: t.NCCD},
				{Cmd: dram.RDA, Dist: 1, Val: t.NCCD},
				{Cmd: dram.WR, Dist: 1, Val: t.NCL + t.NCCD + 2 - t.NCWL},
				{Cmd: dram.WRA, Dist: 1, Val: t.NCL + t.NCCD + 2 - t.NCWL},
				{Cmd: dram.PREA, Dist: 1, Val: t.NRTP},
				{Cmd: dram.PDE, Dist: 1, Val: t.NCL + t.NBL + 1},
				{Cmd: dram.RD, Dist: 1, Val: t.NBL + t.NRTRS, Sibling: true},
				{Cmd: dram.RDA, Dist: 1, Val: t.NBL + t.NRTRS, Sibling: true},
			}
		case dram.RDA:
			return s.Timing(level, dram.RD)
		case dram.WR:
			return []dram.TimingEntry{
				{Cmd: dram.WR, Dist: 1, Val: t.NCCD},
				{Cmd: dram.WRA, Dist: 1, Val: t.NCCD},
				{Cmd: dram.RD, Dist: 1, Val: t.NCWL + t.NBL + t.NWTR},
				{Cmd: dram.RDA, Dist: 1, Val: t.NCWL + t.NBL + t.NWTR},
				{Cmd: dram.PREA, Dist: 1, Val: t.NCWL + t.NBL + t.NWR},
				{Cmd: dram.PDE, Dist: 1, Val: t.NCWL + t.NBL + t.NWR},
				{Cmd: dram.WR, Dist: 1, Val: t.NBL + t.NRTRS, Sibling: true},
				{Cmd: dram.WRA, Dist: 1, Val: t.NBL + t.NRTRS, Sibling: true},
			}
		case dram.WRA:
			return s.Timing(level, dram.WR)
		case dram.PDX:
			return []dram.TimingEntry{
				{Cmd: dram.RD, Dist: 1, Val: t.NXP},
				{Cmd: dram.RDA, Dist: 1, Val: t.NXP},
				{Cmd: dram.WR, Dist: 1, Val: t.NXP},
				{Cmd: dram.WRA, Dist: 1, Val: t.NXP},
				{Cmd: dram.ACT, Dist: 1, Val: t.NXP},
				{Cmd: dram.PRE, Dist: 1, Val: t.NXP},
				{Cmd: dram.PREA, Dist: 1, Val: t.NXP},
			}
		case dram.ACT:
			return []dram.TimingEntry{
				{Cmd: dram.ACT, Dist: 1, Val: t.NRRD},
				{Cmd: dram.ACT, Dist: 4, Val: t.NFAW},
				{Cmd: dram.PREA, Dist: 1, Val: t.NRAS},
				{Cmd: dram.PDE, Dist: 1, Val: 1},
			}
		case dram.PRE:
			return []dram.TimingEntry{{Cmd: dram.REF, Dist: 1, Val: t.NRP}}
		case dram.PREA:
			return []dram.TimingEntry{
				{Cmd: dram.ACT, Dist: 1, Val: t.NRP},
				{Cmd: dram.REF, Dist: 1, Val: t.NRP},
			}
		case dram.REF:
			return []dram.TimingEntry{
				{Cmd: dram.ACT, Dist: 1, Val: t.NRFC},
				{Cmd: dram.REF, Dist: 1, Val: t.NRFC},
				{Cmd: dram.PDE, Dist: 1, Val: 1},
			}
		case dram.SRX:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NXS}}
		}
	case dram.Bank:
		switch cmd {
		case dram.ACT:
			return []dram.TimingEntry{
				{Cmd: dram.RD, Dist: 1, Val: t.NRCD},
				{Cmd: dram.WR, Dist: 1, Val: t.NRCD},
				{Cmd: dram.RDA, Dist: 1, Val: t.NRCD},
				{Cmd: dram.WRA, Dist: 1, Val: t.NRCD},
				{Cmd: dram.PRE, Dist: 1, Val: t.NRAS},
			}
		case dram.PRE:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NRP}}
		case dram.RD:
			return []dram.TimingEntry{{Cmd: dram.PRE, Dist: 1, Val: t.NRTP}}
		case dram.RDA:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NRTP + t.NRP}}
		case dram.WR:
			return []dram.TimingEntry{{Cmd: dram.PRE, Dist: 1, Val: t.NCWL + t.NBL + t.NWR}}
		case dram.WRA:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NCWL + t.NBL + t.NWR + t.NRP}}
		}
	}
	return nil
}

// Validate checks the configuration errors that must be rejected before
// simulation starts: non-power-of-two channel/rank counts and missing
// org/speed data are caught by the caller building Config; Validate
// additionally asserts the level list is well-formed.
func Validate(cfg Config) error {
	if len(cfg.Levels) < 3 {
		return curated.Errorf("ddrcommon: %s: level hierarchy too shallow: %v", cfg.StandardName, cfg.Levels)
	}
	if cfg.Levels[0] != dram.Channel {
		return curated.Errorf("ddrcommon: %s: hierarchy must start at Channel", cfg.StandardName)
	}
	return nil
}
