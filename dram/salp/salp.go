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

// Package salp implements the SALP-1/SALP-2/SALP-MASA/DSARP family: a
// DDR3-like state machine (Chang et al., "Improving DRAM Performance by
// Parallelizing Refreshes with Accesses", HPCA 2014) with an extra
// SubArray level between Bank and Row, so multiple subarrays within one
// bank can be independently Opened. Grounded directly on
// original_source/src/DSARP.cpp's init_prereq/init_lambda/init_rowhit.
package salp

import (
	"math"

	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
)

// Variant selects which published mechanism this Spec instance models.
// All four share the same command/state machinery below. They differ in
// how a refresh request translates (REF for SALP-1/SALP-2, REFPB for
// SALP-MASA/DSARP), in the SubArray-level timing entries SARP/DSARP add,
// and in the refresh engine built on top of them (see refresh/).
type Variant int

const (
	SALP1 Variant = iota
	SALP2
	SALPMASA
	DSARP
)

type Timings struct {
	NBL, NCCD, NRTRS     int
	NCL, NRCD, NRP, NCWL int
	NRAS, NRC            int
	NRTP, NWTR, NWR      int
	NRRD, NFAW           int
	NRFCpb, NRFCab        int
	NREFIpb, NREFIab      int
	NXP, NXS             int
}

type Config struct {
	Variant    Variant
	Channels   int
	Ranks      int
	Banks      int
	SubArrays  int
	Rows, Cols int
	T          Timings
}

type spec struct {
	cfg Config
}

func New(cfg Config) (dram.Spec, error) {
	if cfg.SubArrays == 0 || cfg.SubArrays&(cfg.SubArrays-1) != 0 {
		return nil, curated.Errorf("salp: subarrays must be a power of two, got %d", cfg.SubArrays)
	}
	return &spec{cfg: cfg}, nil
}

func (s *spec) Name() string {
	switch s.cfg.Variant {
	case SALP1:
		return "SALP-1"
	case SALP2:
		return "SALP-2"
	case SALPMASA:
		return "SALP-MASA"
	default:
		return "DSARP"
	}
}

func (s *spec) Levels() []dram.Level {
	return []dram.Level{dram.Channel, dram.Rank, dram.Bank, dram.SubArray}
}

func (s *spec) Counts() dram.Counts {
	var c dram.Counts
	c.PrefetchSize = 8
	c.ChannelWidthBits = 64
	c.N[dram.Channel] = s.cfg.Channels
	c.N[dram.Rank] = s.cfg.Ranks
	c.N[dram.Bank] = s.cfg.Banks
	c.N[dram.SubArray] = s.cfg.SubArrays
	c.N[dram.Row] = s.cfg.Rows
	c.N[dram.Column] = s.cfg.Cols
	return c
}

func (s *spec) ReadLatency() int                        { return s.cfg.T.NCL + s.cfg.T.NBL }
func (s *spec) RefreshTiming(dram.Environment) bool     { return false }

// NREFI is the all-bank refresh interval, used by SALP-1/SALP-2's plain
// rank-level REF; DSARP/SALP-MASA's per-bank REFPB cadence is NREFIpb.
func (s *spec) NREFI() int { return s.cfg.T.NREFIab }

// NREFIpb is the per-bank REFPB interval controller.NewSALP configures a
// refresh.DSARPEngine with for the DSARP/SALP-MASA variants.
func (s *spec) NREFIpb() int { return s.cfg.T.NREFIpb }

// IsPerBank reports whether this variant refreshes bank-by-bank (DSARP,
// SALP-MASA) rather than the whole rank at once (SALP-1, SALP-2).
func (s *spec) IsPerBank() bool { return s.cfg.Variant == DSARP || s.cfg.Variant == SALPMASA }

func (s *spec) Banks() int { return s.cfg.Banks }

func (s *spec) SubArrays() int { return s.cfg.SubArrays }

// RefreshParallel reports whether this variant implements the published
// DSARP mechanism's sub-array-level refresh parallelism and skip/
// early-pull-in scheduling (original_source/src/DSARP.cpp's DARP/SARP/
// DSARP Type cases), rather than SALP-MASA's plain per-bank round robin.
func (s *spec) RefreshParallel() bool { return s.cfg.Variant == DSARP }

// subarrayRRD is the SubArray-level sibling ACT<->REFPB spacing SARP/
// DSARP use so a refresh to one subarray doesn't block an access to a
// different, concurrently open subarray in the same bank: the ordinary
// inter-bank nRRD scaled by the published factor
// (original_source/src/DSARP.h's nRRD_factor, 1.138).
func subarrayRRD(nrrd int) int {
	return int(math.Ceil(float64(nrrd) * 1.138))
}

func (s *spec) Scope(cmd dram.Command) dram.Level {
	switch cmd {
	case dram.ACT, dram.PRE:
		return dram.SubArray
	case dram.PREOTHER:
		return dram.SubArray
	case dram.PREA:
		return dram.Rank
	case dram.REFPB:
		return dram.Bank
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		return dram.SubArray
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
		if s.cfg.Variant == SALP1 || s.cfg.Variant == SALP2 {
			return dram.REF
		}
		return dram.REFPB
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
	case dram.Bank, dram.SubArray:
		return dram.Closed
	default:
		return dram.NoState
	}
}

func (s *spec) IsOpening(cmd dram.Command) bool { return cmd == dram.ACT }
func (s *spec) IsAccessing(cmd dram.Command) bool {
	switch cmd {
	case dram.RD, dram.WR, dram.RDA, dram.WRA:
		return true
	}
	return false
}
func (s *spec) IsClosing(cmd dram.Command) bool {
	switch cmd {
	case dram.RDA, dram.WRA, dram.PRE, dram.PREA, dram.PREOTHER:
		return true
	}
	return false
}
func (s *spec) IsRefreshing(cmd dram.Command) bool { return cmd == dram.REF || cmd == dram.REFPB }

// Prereq mirrors src/DSARP.cpp's init_prereq, with Bank standing in for
// the original's combined Rank->Bank->SubArray chain collapsed by one
// level in this tree (Rank directly owns Banks; Banks own SubArrays).
func (s *spec) Prereq(n *dram.Node, cmd dram.Command, childID int) dram.Command {
	switch n.Level() {
	case dram.Rank:
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
				for _, sa := range b.Children() {
					if sa.State() != dram.Closed {
						return dram.PREA
					}
				}
			}
			return dram.REF
		case dram.PDE:
			if n.State() == dram.SelfRefresh {
				return dram.SRX
			}
			return dram.PDE
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
		case dram.REFPB:
			for _, sa := range n.Children() {
				if sa.State() != dram.Closed {
					return dram.PRE
				}
			}
			return dram.REFPB
		}
	case dram.SubArray:
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
	case dram.Rank:
		switch cmd {
		case dram.PREA:
			n.ClearRowState()
			for _, b := range n.Children() {
				b.SetState(dram.Closed)
				b.ClearRowState()
				for _, sa := range b.Children() {
					sa.SetState(dram.Closed)
					sa.ClearRowState()
				}
			}
		case dram.PDE:
			for _, b := range n.Children() {
				for _, sa := range b.Children() {
					if sa.State() != dram.Closed {
						n.SetState(dram.ActPowerDown)
						return
					}
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
	case dram.Bank:
		switch cmd {
		case dram.REFPB:
			n.ClearRowState()
		case dram.PREOTHER:
			for i, sa := range n.Children() {
				if i != childID {
					sa.SetState(dram.Closed)
					sa.ClearRowState()
				}
			}
		}
	case dram.SubArray:
		switch cmd {
		case dram.ACT:
			n.SetState(dram.Opened)
			n.SetRowState(childID, dram.Opened)
		case dram.PRE, dram.RDA, dram.WRA:
			n.SetState(dram.Closed)
			n.ClearRowState()
		case dram.PREOTHER:
			// closes every *other* open subarray within this bank; the
			// bank-level parent applies this across siblings, so at the
			// subarray level itself there is nothing further to do.
		}
	}
}

func (s *spec) RowHit(n *dram.Node, cmd dram.Command, childID int) bool {
	if n.Level() != dram.SubArray {
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
	if n.Level() != dram.SubArray {
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
	case dram.Rank:
		switch cmd {
		case dram.ACT:
			return []dram.TimingEntry{
				{Cmd: dram.ACT, Dist: 1, Val: t.NRRD},
				{Cmd: dram.ACT, Dist: 4, Val: t.NFAW},
				{Cmd: dram.PREA, Dist: 1, Val: t.NRAS},
			}
		case dram.PREA:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NRP}}
		case dram.REF:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NRFCab}, {Cmd: dram.REF, Dist: 1, Val: t.NRFCab}}
		case dram.RD:
			return []dram.TimingEntry{{Cmd: dram.RD, Dist: 1, Val: t.NCCD}, {Cmd: dram.WR, Dist: 1, Val: t.NCL + t.NCCD + 2 - t.NCWL}}
		case dram.WR:
			return []dram.TimingEntry{{Cmd: dram.WR, Dist: 1, Val: t.NCCD}, {Cmd: dram.RD, Dist: 1, Val: t.NCWL + t.NBL + t.NWTR}}
		}
	case dram.Bank:
		switch cmd {
		case dram.REFPB:
			return []dram.TimingEntry{{Cmd: dram.REFPB, Dist: 1, Val: t.NRFCpb}, {Cmd: dram.PRE, Dist: 1, Val: t.NRFCpb, Sibling: true}}
		}
	case dram.SubArray:
		switch cmd {
		case dram.ACT:
			entries := []dram.TimingEntry{
				{Cmd: dram.RD, Dist: 1, Val: t.NRCD},
				{Cmd: dram.WR, Dist: 1, Val: t.NRCD},
				{Cmd: dram.PRE, Dist: 1, Val: t.NRAS},
			}
			if s.cfg.Variant == DSARP {
				entries = append(entries, dram.TimingEntry{Cmd: dram.REFPB, Dist: 1, Val: subarrayRRD(t.NRRD), Sibling: true})
			}
			return entries
		case dram.REFPB:
			if s.cfg.Variant != DSARP {
				return nil
			}
			return []dram.TimingEntry{
				{Cmd: dram.ACT, Dist: 1, Val: t.NRFCpb},
				{Cmd: dram.ACT, Dist: 1, Val: subarrayRRD(t.NRRD), Sibling: true},
			}
		case dram.PRE:
			return []dram.TimingEntry{{Cmd: dram.ACT, Dist: 1, Val: t.NRP}}
		case dram.RD:
			return []dram.TimingEntry{{Cmd: dram.PRE, Dist: 1, Val: t.NRTP}}
		case dram.WR:
			return []dram.TimingEntry{{Cmd: dram.PRE, Dist: 1, Val: t.NCWL + t.NBL + t.NWR}}
		}
	}
	return nil
}
