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

// Package workload replays a memory access trace against a memory.Memory,
// one request per line. Grounded on original_source/src/Processor.cpp's
// Trace::get_request: each line is "<bubble-count> <hex read addr>
// [<hex write addr>]"; bubble-count is non-memory work to skip (modeled
// here as idle cycles after the line's read is queued, before the next
// line is read), and a second address on the
// same line queues a write immediately behind the read, exactly as the
// original's has_write one-request lookahead does.
package workload

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
)

// Entry is one parsed trace line, expanded into its one or two requests.
type entry struct {
	bubbles  int64
	read     int64
	write    int64
	hasWrite bool
}

// Trace holds every parsed line in memory; a CLI replay tool can
// reasonably keep one in memory rather than streaming it off disk.
type Trace struct {
	entries []entry
	pos     int
}

// Load parses r line by line. A blank line or bare whitespace is skipped,
// matching the original treating blank lines as structurally absent.
func Load(r io.Reader) (*Trace, error) {
	t := &Trace{}
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, curated.Errorf("workload: line %d: expected \"<bubbles> <addr> [<addr>]\", got %q", lineNum, line)
		}
		bubbles, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, curated.Errorf("workload: line %d: bad bubble count: %s", lineNum, err.Error())
		}
		read, err := strconv.ParseInt(fields[1], 0, 64)
		if err != nil {
			return nil, curated.Errorf("workload: line %d: bad address: %s", lineNum, err.Error())
		}
		e := entry{bubbles: bubbles, read: read}
		if len(fields) >= 3 {
			write, err := strconv.ParseInt(fields[2], 0, 64)
			if err != nil {
				return nil, curated.Errorf("workload: line %d: bad write address: %s", lineNum, err.Error())
			}
			e.write = write
			e.hasWrite = true
		}
		t.entries = append(t.entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, curated.Errorf("workload: reading trace: %s", err.Error())
	}
	return t, nil
}

// Len reports how many lines were parsed.
func (t *Trace) Len() int { return len(t.entries) }

// Driver replays a Trace against a Sender one request at a time, retrying
// a request next cycle when the channel's queue is full and Enqueue
// returns false.
type Driver struct {
	trace   *Trace
	send    Sender
	pending []*dram.Request // requests not yet accepted, oldest first
	bubble  int64
	Issued  int64
	Retired int64
}

// Sender is the subset of memory.Memory a Driver needs.
type Sender interface {
	Send(req *dram.Request) bool
}

func NewDriver(t *Trace, send Sender) *Driver {
	return &Driver{trace: t, send: send}
}

// Tick advances the driver by one cycle: retries anything backpressured,
// then (if idle) burns through bubble cycles before issuing the next
// line's read, queuing its paired write immediately behind it.
func (d *Driver) Tick() {
	for len(d.pending) > 0 {
		if !d.send.Send(d.pending[0]) {
			return
		}
		d.Issued++
		d.pending = d.pending[1:]
	}

	if d.bubble > 0 {
		d.bubble--
		return
	}

	if d.trace == nil || d.pos() >= d.trace.Len() {
		return
	}

	e := d.trace.entries[d.trace.pos]
	d.trace.pos++
	d.bubble = e.bubbles

	d.pending = append(d.pending, d.newRequest(e.read, dram.ReqRead))
	if e.hasWrite {
		d.pending = append(d.pending, d.newRequest(e.write, dram.ReqWrite))
	}
}

func (d *Driver) pos() int { return d.trace.pos }

func (d *Driver) newRequest(addr int64, t dram.RequestType) *dram.Request {
	req := &dram.Request{Addr: addr, Type: t}
	req.Callback = func(*dram.Request) { d.Retired++ }
	return req
}

// Finished reports whether every trace line has been issued and every
// issued request has retired.
func (d *Driver) Finished(pendingInMemory int) bool {
	return d.trace != nil && d.pos() >= d.trace.Len() && len(d.pending) == 0 && pendingInMemory == 0
}
