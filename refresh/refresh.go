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

// Package refresh schedules REF/REFPB requests. Grounded on
// original_source/src/Refresh.h: an all-bank engine common to every
// standard, plus a per-subarray DSARP engine (init_early_refresh/wrp in
// the original) that tracks a backlog per bank and can pull a refresh in
// early when accesses have let it fall far enough behind.
package refresh

import (
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/logger"
	"github.com/CMU-SAFARI/ramulator-sub000/random"
)

// Injector is the subset of the controller the refresh engine needs: it
// only ever asks to enqueue a new request.
type Injector interface {
	ChannelID() int
	RankIDs() []int
	Enqueue(req *dram.Request) bool
}

// QueueView is the narrow, read-only window into a controller's queues
// that DSARPEngine consults to decide whether a scheduled per-bank
// refresh can be skipped or one can be pulled in early, per spec.md §9's
// instruction to pass a narrow view rather than the full controller.
// Grounded on original_source/src/Refresh.cpp's inject_refresh/
// early_inject_refresh, which inspect otherq/readq the same way.
type QueueView interface {
	ReadQueueEmpty() bool
	AnyPendingRefresh() bool
	BankPendingRefresh(rank, bank int) bool
	BankBusy(rank, bank int) bool
	OtherQueueFull() bool
}

const (
	backlogMax                = 8
	backlogMin                = -8
	backlogEarlyPullThreshold = -6
)

// Engine is the all-bank refresh scheduler shared by every standard.
type Engine struct {
	ctrl      Injector
	spec      dram.Spec
	clk       int64
	refreshed int64
	interval  int64

	log  *logger.Logger
	perm logger.Permission
}

func New(ctrl Injector, spec dram.Spec, log *logger.Logger, topics *logger.Topics) *Engine {
	return &Engine{ctrl: ctrl, spec: spec, log: log, perm: topics.Permission("refresh")}
}

// Tick advances the engine's clock by one cycle and, when the refresh
// interval has elapsed, injects a rank-level REF request to every rank.
func (e *Engine) Tick(env dram.Environment) {
	e.clk++

	if e.clk-e.refreshed >= e.refreshInterval() {
		e.injectRefresh()
		if e.spec.RefreshTiming(env) {
			e.log.Logf(e.perm, "refresh", "chan %d: refresh timing switched for temperature %v", e.ctrl.ChannelID(), env.Temperature)
		}
	}
}

func (e *Engine) refreshInterval() int64 {
	if e.interval > 0 {
		return e.interval
	}
	return 1 << 62 // never, until SetInterval is called by the owning controller at construction
}

// SetInterval is called once by the controller with the spec's nREFI so
// the engine doesn't need to know the standard's Timings layout.
func (e *Engine) SetInterval(nrefi int64) { e.interval = nrefi }

func (e *Engine) injectRefresh() {
	for _, rank := range e.ctrl.RankIDs() {
		addrVec := []int{e.ctrl.ChannelID(), rank, -1, -1, -1, -1, -1, -1}
		req := &dram.Request{Type: dram.ReqRefresh, AddrVec: addrVec}
		if !e.ctrl.Enqueue(req) {
			e.log.Logf(e.perm, "refresh", "chan %d rank %d: refresh request dropped, otherq full", e.ctrl.ChannelID(), rank)
		}
	}
	e.refreshed = e.clk
}

// DSARPEngine specializes per-subarray refresh for salp.DSARP: each bank
// tracks a backlog counter that drifts positive while REFPB runs ahead of
// schedule and negative while accesses delay it. In dsarp mode (the
// published DSARP mechanism, which folds together what the original
// source calls DARP and SARP) the regular per-interval REFPB can be
// skipped while the controller is otherwise idle, an idle bank's REFPB
// can be pulled in early once its backlog falls too far behind
// (Chang et al., HPCA 2014 §4), and consecutive per-bank refreshes cycle
// across subarrays rather than always hitting the same one. SALP-MASA
// uses this engine only for its plain round-robin per-bank cadence
// (dsarp=false): it is not part of DSARP.h's Type enum in the original
// and has no skip/early-pull/subarray-parallel mechanism there.
type DSARPEngine struct {
	ctrl      Injector
	ranks     int
	banks     int
	subarrays int
	dsarp     bool

	backlog [][]int // [rank][bank]
	next    []int   // next bank to refresh per rank
	sa      [][]int // [rank][bank] next subarray to refresh, dsarp only

	clk int64
	rng *random.Random

	log  *logger.Logger
	perm logger.Permission
}

// NewDSARP builds a per-bank refresh engine for banks banks across ranks
// ranks. subarrays is the per-bank subarray count (used only when dsarp
// is true, to cycle which subarray's credit a REFPB spends). dsarp
// selects the full published DSARP mechanism (skip, early pull-in,
// sub-array cycling) over the plain per-bank round robin SALP-MASA uses.
func NewDSARP(ctrl Injector, ranks, banks, subarrays int, dsarp bool, log *logger.Logger, topics *logger.Topics) *DSARPEngine {
	backlog := make([][]int, ranks)
	next := make([]int, ranks)
	sa := make([][]int, ranks)
	for r := range backlog {
		backlog[r] = make([]int, banks)
		sa[r] = make([]int, banks)
	}
	e := &DSARPEngine{
		ctrl: ctrl, ranks: ranks, banks: banks, subarrays: subarrays, dsarp: dsarp,
		backlog: backlog, next: next, sa: sa,
		log: log, perm: topics.Permission("refresh"),
	}
	e.rng = random.NewRandom(e)
	return e
}

// Clk implements random.ClockSource so the engine's idle-bank pick in
// earlyPullIn is a pure function of its own clock, not wall-clock time.
func (e *DSARPEngine) Clk() int64 { return e.clk }

// Tick advances the DSARP engine by one cycle. writeMode is the owning
// controller's current write-mode flag: early pull-in only runs during
// read mode, per original_source/src/Refresh.cpp's
// early_inject_refresh's own write_mode guard. nrefipb is the per-bank
// REFPB interval; callers pass it directly since this engine doesn't
// hold a dram.Spec.
func (e *DSARPEngine) Tick(nrefipb int64, writeMode bool, view QueueView) {
	e.clk++

	if e.dsarp && !writeMode {
		e.earlyPullIn(view)
	}

	if e.clk%nrefipb != 0 {
		return
	}
	for r := 0; r < e.ranks; r++ {
		bank := e.next[r]
		e.next[r] = (bank + 1) % e.banks

		// Behind schedule by one ref simply because the interval elapsed;
		// offset by the +1 credit below if this rank/bank's REFPB actually
		// issues this cycle.
		e.backlog[r][bank]--
		if e.backlog[r][bank] < backlogMin {
			e.backlog[r][bank] = backlogMin
		}

		if e.dsarp {
			refNow := (!view.AnyPendingRefresh() && view.ReadQueueEmpty()) || e.backlog[r][bank] <= backlogMin
			if !refNow {
				continue
			}
		}

		e.refresh(r, bank)
	}
}

func (e *DSARPEngine) refresh(rank, bank int) {
	addrVec := make([]int, int(dram.Column)+1)
	for i := range addrVec {
		addrVec[i] = -1
	}
	addrVec[dram.Channel] = e.ctrl.ChannelID()
	addrVec[dram.Rank] = rank
	addrVec[dram.Bank] = bank
	if e.dsarp {
		addrVec[dram.SubArray] = e.sa[rank][bank]
	}
	req := &dram.Request{Type: dram.ReqRefresh, AddrVec: addrVec}
	if !e.ctrl.Enqueue(req) {
		e.log.Logf(e.perm, "refresh", "chan %d rank %d bank %d: REFPB dropped, otherq full", e.ctrl.ChannelID(), rank, bank)
		return
	}
	e.backlog[rank][bank]++
	if e.backlog[rank][bank] > backlogMax {
		e.backlog[rank][bank] = backlogMax
	}
	if e.dsarp {
		e.sa[rank][bank] = (e.sa[rank][bank] + 1) % e.subarrays
	}
}

// earlyPullIn opportunistically issues one REFPB per rank, ahead of its
// regular schedule, to a bank that is both idle (no pending read) and not
// already waiting on a refresh, once that bank's backlog has fallen far
// enough behind. Grounded on early_inject_refresh: the bank to examine
// first is picked at random per rank per cycle the same way the
// original's rand() call is, via random.Random so the choice stays a
// pure function of the simulator's own clock.
func (e *DSARPEngine) earlyPullIn(view QueueView) {
	for r := 0; r < e.ranks; r++ {
		start := e.rng.Rewindable(e.banks)
		for i := 0; i < e.banks; i++ {
			bank := (start + i) % e.banks
			if view.BankBusy(r, bank) {
				continue
			}
			if view.BankPendingRefresh(r, bank) {
				continue
			}
			if e.backlog[r][bank] >= backlogEarlyPullThreshold || view.OtherQueueFull() {
				continue
			}
			e.refresh(r, bank)
			break
		}
	}
}
