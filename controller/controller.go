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

// Package controller drives one DRAM channel's read/write/other queues
// against its dram.Node tree, one cycle at a time. Grounded on
// original_source/src/Controller.h/.cpp: three priority queues (read,
// write, other), a write-mode hysteresis (switch to writes once the write
// queue is 80% full or the read queue is empty, switch back once it's
// under 20% and reads are waiting), speculative precharge when nothing is
// ready to issue, and an optional command trace.
//
// Per-standard deviations the original expressed as template
// specializations (Controller<SALP>::get_addr_vec/is_ready,
// Controller<ALDRAM>::update_temp, Controller<TLDRAM>::tick) are handled
// without subclassing: NewSALP swaps in a per-bank refresh engine for the
// per-bank variants, NewTLDRAM sets the prepare hook, NewHMC is plain New,
// and ALDRAM's temperature switch runs through the refresh engine's call
// to the spec's RefreshTiming.
package controller

import (
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/logger"
	"github.com/CMU-SAFARI/ramulator-sub000/refresh"
	"github.com/CMU-SAFARI/ramulator-sub000/rowpolicy"
	"github.com/CMU-SAFARI/ramulator-sub000/rowtable"
	"github.com/CMU-SAFARI/ramulator-sub000/scheduler"
	"github.com/CMU-SAFARI/ramulator-sub000/stats"
	"github.com/CMU-SAFARI/ramulator-sub000/trace"
)

// queue is a capacity-bounded FIFO of in-flight requests, standing in for
// the original's std::list<Request>.
type queue struct {
	reqs []*dram.Request
	max  int
}

func newQueue(max int) *queue { return &queue{max: max} }

func (q *queue) size() int { return len(q.reqs) }
func (q *queue) full() bool { return len(q.reqs) >= q.max }

func (q *queue) push(r *dram.Request) { q.reqs = append(q.reqs, r) }

func (q *queue) remove(idx int) {
	q.reqs = append(q.reqs[:idx], q.reqs[idx+1:]...)
}

// Controller owns one channel's runtime state.
type Controller struct {
	channelID int

	channel *dram.Node
	spec    dram.Spec
	Clk     int64

	sched     *scheduler.Scheduler
	rowPolicy *rowpolicy.Policy
	rowTable  *rowtable.Table
	rowLevel  dram.Level
	Refresh   Refresher

	readQ, writeQ, otherQ *queue
	pending               []*dram.Request
	writeMode             bool

	log      *logger.Logger
	cmdPerm  logger.Permission
	sink     trace.Sink
	Stat     *stats.Channel

	// addrVec picks the address vector a request's command is issued
	// against. New sets it to return req.AddrVec unchanged, and no
	// constructor in this package replaces it.
	addrVec func(cmd dram.Command, req *dram.Request) []int
	// isReady, when set, replaces plain channel.Check in reqReady. No
	// constructor in this package sets it.
	isReady func(req *dram.Request, firstCmd dram.Command) bool
	// prepare runs once, the first cycle a request is about to issue its
	// first command; TLDRAM uses it to turn a READ into an EXTENSION.
	prepare func(req *dram.Request)

	// prechargeCmd is the command rowpolicy.Victim searches for when the
	// scheduler has nothing ready to issue. Every standard uses plain PRE;
	// its scope (Bank, or SubArray under SALP) comes from the Spec itself.
	prechargeCmd dram.Command
}

// Refresher is the subset of refresh.Engine/refresh.DSARPEngine a
// Controller drives once per cycle; NewSALP substitutes a DSARP-backed
// implementation for the per-bank variants.
type Refresher interface {
	Tick(env dram.Environment)
}

// Config collects the construction-time parameters New needs.
type Config struct {
	ChannelID   int
	Channel     *dram.Node
	Spec        dram.Spec
	Scheduler   scheduler.Type
	RowPolicy   rowpolicy.Type
	QueueDepth  int
	Log         *logger.Logger
	Topics      *logger.Topics
	Sink        trace.Sink
	Stat        *stats.Channel
}

// New builds a plain Controller; standard-specific constructors in this
// package (NewSALP, NewTLDRAM, NewHMC) call this and then adjust the result.
func New(cfg Config) *Controller {
	rowLevel := cfg.Spec.Levels()[len(cfg.Spec.Levels())-1] + 1 // one past the deepest node level (Row only under SALP)
	c := &Controller{
		channelID:    cfg.ChannelID,
		channel:      cfg.Channel,
		spec:         cfg.Spec,
		rowLevel:     rowLevel,
		rowTable:     rowtable.New(rowLevel),
		readQ:        newQueue(cfg.QueueDepth),
		writeQ:       newQueue(cfg.QueueDepth),
		otherQ:       newQueue(cfg.QueueDepth),
		log:          cfg.Log,
		cmdPerm:      cfg.Topics.Permission("cmdtrace"),
		sink:         cfg.Sink,
		Stat:         cfg.Stat,
		prechargeCmd: dram.PRE,
	}
	c.rowPolicy = rowpolicy.New(cfg.RowPolicy)
	c.sched = scheduler.New(cfg.Scheduler, c)
	eng := refresh.New(c, cfg.Spec, cfg.Log, cfg.Topics)
	if ii, ok := cfg.Spec.(interface{ NREFI() int }); ok {
		eng.SetInterval(int64(ii.NREFI()))
	}
	c.Refresh = eng
	c.addrVec = func(cmd dram.Command, req *dram.Request) []int { return req.AddrVec }
	return c
}

// ChannelID implements refresh.Injector and scheduler identity queries.
func (c *Controller) ChannelID() int { return c.channelID }

// QueueLength is the total number of requests this controller is still
// holding, across its three queues and the pending-completion list.
func (c *Controller) QueueLength() int {
	return c.readQ.size() + c.writeQ.size() + c.otherQ.size() + len(c.pending)
}

func (c *Controller) RankIDs() []int {
	ids := make([]int, len(c.channel.Children()))
	for i, r := range c.channel.Children() {
		ids[i] = r.ID()
	}
	return ids
}

func (c *Controller) queueFor(t dram.RequestType) *queue {
	switch t {
	case dram.ReqRead:
		return c.readQ
	case dram.ReqWrite:
		return c.writeQ
	default:
		return c.otherQ
	}
}

// Enqueue admits req, stamping its arrival time. It returns false if the
// target queue is full. A read to an address with a pending write ahead
// of it in the write queue is short-circuited the way the original's
// enqueue coherence check does: it is answered from the write queue
// without ever touching DRAM.
func (c *Controller) Enqueue(req *dram.Request) bool {
	q := c.queueFor(req.Type)
	if q.full() {
		return false
	}
	req.Arrive = c.Clk
	req.IsFirstCommand = true

	if req.Type == dram.ReqRead {
		for _, w := range c.writeQ.reqs {
			if w.Addr == req.Addr {
				req.Depart = c.Clk + 1
				c.pending = append(c.pending, req)
				return true
			}
		}
	}
	q.push(req)
	return true
}

// Tick advances the controller by one cycle: retires a completed read,
// runs the refresh engine, updates write-mode hysteresis, and issues at
// most one command.
func (c *Controller) Tick(env dram.Environment) {
	c.Clk++

	if len(c.pending) > 0 {
		req := c.pending[0]
		if req.Depart <= c.Clk {
			if req.Callback != nil {
				req.Callback(req)
			}
			c.pending = c.pending[1:]
		}
	}

	c.Refresh.Tick(env)

	if !c.writeMode {
		if c.writeQ.size() >= (c.writeQ.max*8)/10 || c.readQ.size() == 0 {
			c.writeMode = true
		}
	} else {
		if c.writeQ.size() <= (c.writeQ.max*2)/10 && c.readQ.size() != 0 {
			c.writeMode = false
		}
	}

	q := c.readQ
	if c.writeMode {
		q = c.writeQ
	}
	if c.otherQ.size() > 0 {
		q = c.otherQ
	}

	idx := c.sched.GetHead(q.reqs)
	if idx < 0 || !c.reqReady(q.reqs[idx]) {
		cmd := c.prechargeCommand()
		victim := c.rowPolicy.Victim(c.rowTable, c.Clk, func(group []int) bool {
			return c.channel.Check(cmd, padAddr(group, c.channel), c.Clk)
		})
		if victim != nil {
			c.issue(cmd, padAddr(victim, c.channel))
		}
		return
	}

	req := q.reqs[idx]
	if c.prepare != nil {
		c.prepare(req)
	}
	if req.IsFirstCommand {
		req.IsFirstCommand = false
		if req.Type == dram.ReqRead || req.Type == dram.ReqWrite {
			c.recordOutcome(req)
		}
	}

	cmd := c.firstCmd(req)
	c.issue(cmd, c.addrVec(cmd, req))

	if cmd != c.completingCmd(req) {
		return
	}

	// BurstCount>1 (HMC's multi-beat CAS) holds the request at the head
	// of its queue, reissuing the completing command once per beat,
	// until the last beat actually retires it.
	if req.BurstCount > 1 {
		req.BurstCount--
		return
	}

	if req.Type == dram.ReqRead || req.Type == dram.ReqExtension {
		req.Depart = c.Clk + int64(c.spec.ReadLatency())
		c.pending = append(c.pending, req)
	}
	q.remove(idx)
}

// prechargeCommand is the command rowpolicy.Victim searches for.
func (c *Controller) prechargeCommand() dram.Command { return c.prechargeCmd }

// completingCmd is the command whose issue retires req: ordinarily
// spec.Translate(req.Type), except under rowpolicy.ClosedAP a read/write
// prefers its auto-precharge form (RDA/WRA) over a plain RD/WR that a later
// speculative PRE would have to follow anyway.
func (c *Controller) completingCmd(req *dram.Request) dram.Command {
	cmd := c.spec.Translate(req.Type)
	if c.rowPolicy.Type == rowpolicy.ClosedAP {
		switch cmd {
		case dram.RD:
			cmd = dram.RDA
		case dram.WR:
			cmd = dram.WRA
		}
	}
	return cmd
}

func (c *Controller) firstCmd(req *dram.Request) dram.Command {
	return c.channel.Decode(c.completingCmd(req), req.AddrVec)
}

func (c *Controller) reqReady(req *dram.Request) bool {
	cmd := c.firstCmd(req)
	if c.isReady != nil {
		return c.isReady(req, cmd)
	}
	return c.channel.Check(cmd, req.AddrVec, c.Clk)
}

func (c *Controller) issue(cmd dram.Command, addrVec []int) {
	c.channel.Update(cmd, addrVec, c.Clk)
	c.rowTable.Update(c.spec, cmd, addrVec, c.Clk)
	if c.Stat != nil {
		c.Stat.RecordCommand(cmd)
	}
	if c.sink != nil {
		c.sink.Command(c.Clk, cmd, addrVec)
	}
	c.log.Logf(c.cmdPerm, "cmdtrace", "chan %d: issue %s at clk %d", c.channelID, cmd, c.Clk)
}

func (c *Controller) recordOutcome(req *dram.Request) {
	if c.Stat == nil {
		return
	}
	outcome := stats.Miss
	if c.IsRowHit(req) {
		outcome = stats.Hit
	} else if c.IsRowOpen(req) {
		outcome = stats.Conflict
	}
	c.Stat.RecordOutcome(req.Type, outcome)
}

func padAddr(group []int, channel *dram.Node) []int {
	// group names only the levels up to and including the precharge
	// scope; Row/Column are left wildcarded (-1) since PRE never
	// addresses them.
	out := make([]int, int(dram.Column)+1)
	for i := range out {
		out[i] = -1
	}
	copy(out, group)
	return out
}

// --- refresh.QueueView ---

func (c *Controller) ReadQueueEmpty() bool { return c.readQ.size() == 0 }

func (c *Controller) AnyPendingRefresh() bool {
	for _, r := range c.otherQ.reqs {
		if r.Type == dram.ReqRefresh {
			return true
		}
	}
	return false
}

func (c *Controller) BankPendingRefresh(rank, bank int) bool {
	for _, r := range c.otherQ.reqs {
		if r.Type == dram.ReqRefresh && r.AddrAt(dram.Rank) == rank && r.AddrAt(dram.Bank) == bank {
			return true
		}
	}
	return false
}

func (c *Controller) BankBusy(rank, bank int) bool {
	for _, r := range c.readQ.reqs {
		if r.AddrAt(dram.Rank) == rank && r.AddrAt(dram.Bank) == bank {
			return true
		}
	}
	return false
}

func (c *Controller) OtherQueueFull() bool { return c.otherQ.full() }

// --- scheduler.Queryable ---

func (c *Controller) IsReady(req *dram.Request) bool { return c.reqReady(req) }

func (c *Controller) IsRowHit(req *dram.Request) bool {
	// Row itself is never a Node (dram.Build stops at the deepest entry
	// in Levels()), so its value always sits at the fixed dram.Row slot
	// in AddrVec regardless of how deep the standard's node tree goes.
	row := req.AddrAt(dram.Row)
	node := c.locate(req.AddrVec, c.rowLevel-1)
	if node == nil {
		return false
	}
	return c.spec.RowHit(node, c.firstCmd(req), row)
}

func (c *Controller) IsRowOpen(req *dram.Request) bool {
	row := req.AddrAt(dram.Row)
	node := c.locate(req.AddrVec, c.rowLevel-1)
	if node == nil {
		return false
	}
	return c.spec.RowOpen(node, c.firstCmd(req), row)
}

func (c *Controller) PrechargeScope() dram.Level { return c.spec.Scope(c.prechargeCmd) }

func (c *Controller) RowTable() *rowtable.Table { return c.rowTable }

// locate walks the tree down to the node at level, following addrVec.
func (c *Controller) locate(addrVec []int, level dram.Level) *dram.Node {
	n := c.channel
	for n.Level() < level {
		if len(n.Children()) == 0 {
			return nil
		}
		idx := n.AddrAt(addrVec)
		if idx < 0 || idx >= len(n.Children()) {
			return nil
		}
		n = n.Children()[idx]
	}
	return n
}
