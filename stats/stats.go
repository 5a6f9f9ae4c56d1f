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

// Package stats collects per-channel counters (row hits/misses/conflicts,
// per-command issue counts) and exposes them both as a plain snapshot struct (for end-of-run reporting,
// matching the original's printed stat dump) and as prometheus counters
// (for scraping during long runs). Channel also has queue-length,
// read-latency and transaction-byte fields, which no code in this module
// updates.
package stats

import (
	"strconv"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/prometheus/client_golang/prometheus"
)

// Channel accumulates the counters for a single DRAM channel.
type Channel struct {
	ChannelID int

	RowHits      int64
	RowMisses    int64
	RowConflicts int64

	ReadRowHits      int64
	ReadRowMisses    int64
	ReadRowConflicts int64

	WriteRowHits      int64
	WriteRowMisses    int64
	WriteRowConflicts int64

	ReadTransactionBytes  int64
	WriteTransactionBytes int64
	ReadLatencySum        int64
	ReadCount             int64

	ReqQueueLengthSum   int64
	ReadQueueLengthSum  int64
	WriteQueueLengthSum int64

	CommandCount map[dram.Command]int64

	reg *prometheus.Registry
	cmd *prometheus.CounterVec
	hit *prometheus.CounterVec
}

// NewChannel builds a Channel bound to reg, registering its prometheus
// collectors under a "ramulator" namespace labeled by channel ID.
func NewChannel(channelID int, reg *prometheus.Registry) *Channel {
	c := &Channel{
		ChannelID:    channelID,
		CommandCount: make(map[dram.Command]int64),
		reg:          reg,
	}
	c.cmd = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ramulator",
		Subsystem: "dram",
		Name:      "commands_issued_total",
		Help:      "Number of DRAM commands issued, by channel and command name.",
	}, []string{"channel", "command"})
	c.hit = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ramulator",
		Subsystem: "dram",
		Name:      "row_buffer_outcomes_total",
		Help:      "Row buffer hit/miss/conflict outcomes, by channel and outcome.",
	}, []string{"channel", "outcome"})
	if reg != nil {
		reg.MustRegister(c.cmd, c.hit)
	}
	return c
}

// RecordCommand accounts for one issued command.
func (c *Channel) RecordCommand(cmd dram.Command) {
	c.CommandCount[cmd]++
	if c.cmd != nil {
		c.cmd.WithLabelValues(channelLabel(c.ChannelID), cmd.String()).Inc()
	}
}

// Outcome classifies a first-command dispatch for row-buffer accounting.
type Outcome int

const (
	Hit Outcome = iota
	Conflict
	Miss
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Conflict:
		return "conflict"
	default:
		return "miss"
	}
}

// RecordOutcome accounts for one request's row-buffer outcome, split by
// request type the way the original splits read_row_hits/write_row_hits.
func (c *Channel) RecordOutcome(reqType dram.RequestType, outcome Outcome) {
	switch outcome {
	case Hit:
		c.RowHits++
	case Conflict:
		c.RowConflicts++
	case Miss:
		c.RowMisses++
	}
	switch reqType {
	case dram.ReqRead:
		switch outcome {
		case Hit:
			c.ReadRowHits++
		case Conflict:
			c.ReadRowConflicts++
		case Miss:
			c.ReadRowMisses++
		}
	case dram.ReqWrite:
		switch outcome {
		case Hit:
			c.WriteRowHits++
		case Conflict:
			c.WriteRowConflicts++
		case Miss:
			c.WriteRowMisses++
		}
	}
	if c.hit != nil {
		c.hit.WithLabelValues(channelLabel(c.ChannelID), outcome.String()).Inc()
	}
}

func channelLabel(id int) string { return strconv.Itoa(id) }
