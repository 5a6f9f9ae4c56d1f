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

// Package memory owns one controller.Controller per channel and the
// address-decoding policy that turns a flat physical address into the
// address vector each controller's Node tree expects. Grounded on
// original_source/src/Memory.h's MemoryBase::send and its ChRaBaRoCo /
// RoBaRaCoCh bit-slicing constructors.
package memory

import (
	"github.com/CMU-SAFARI/ramulator-sub000/controller"
	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
)

// Mapping selects which field order an address's bits decode into.
type Mapping int

const (
	// ChRaBaRoCo slices Channel | Rank | ... | Row | Column MSB-first:
	// the highest bits pick the channel, the lowest the column.
	ChRaBaRoCo Mapping = iota
	// RoBaRaCoCh (the default) interleaves so Channel and Column occupy
	// the lowest-order bits, spreading cache-line-sequential addresses
	// across channels and giving each access a fresh column before
	// climbing to rank, bank and finally row at the high end.
	RoBaRaCoCh
)

func (m Mapping) String() string {
	if m == ChRaBaRoCo {
		return "ChRaBaRoCo"
	}
	return "RoBaRaCoCh"
}

// Memory fans requests out to one Controller per channel.
type Memory struct {
	mapping Mapping
	levels  []dram.Level // root-first, as declared by the Spec (e.g. Channel,Rank,Bank)
	counts  dram.Counts
	txBits  uint

	ctrls []*controller.Controller
}

// New builds a Memory over ctrls, one per channel, indexed by channel id.
// levels and counts come from the same dram.Spec every controller in ctrls
// was built against.
func New(mapping Mapping, levels []dram.Level, counts dram.Counts, ctrls []*controller.Controller) (*Memory, error) {
	txSize := counts.PrefetchSize * counts.ChannelWidthBits / 8
	if txSize <= 0 {
		return nil, curated.Errorf("memory: invalid transaction size (prefetch=%d, channel width bits=%d)", counts.PrefetchSize, counts.ChannelWidthBits)
	}
	if txSize&(txSize-1) != 0 {
		return nil, curated.Errorf("memory: transaction size %d is not a power of two", txSize)
	}
	return &Memory{
		mapping: mapping,
		levels:  levels,
		counts:  counts,
		txBits:  addrBits(txSize),
		ctrls:   ctrls,
	}, nil
}

// addrBits returns the number of bits needed to represent n distinct
// values (0 and 1 both need 0 bits, matching a absent/degenerate level).
func addrBits(n int) uint {
	bits := uint(0)
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// fieldOrder returns the levels this mapping decodes, ordered from the
// least significant address bits to the most significant.
func (m *Memory) fieldOrder() []dram.Level {
	switch m.mapping {
	case ChRaBaRoCo:
		order := append([]dram.Level{}, m.levels...)
		order = append(order, dram.Row, dram.Column)
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
		return order
	default: // RoBaRaCoCh
		order := []dram.Level{dram.Channel, dram.Column}
		order = append(order, m.levels[1:]...) // Rank .. innermost level, Channel already placed
		order = append(order, dram.Row)
		return order
	}
}

// Decode turns addr into a per-level address vector sized through Column,
// with -1 in every slot this Spec doesn't use. It rejects an address that
// isn't aligned to the standard's transaction size.
func (m *Memory) Decode(addr int64) ([]int, error) {
	if m.txBits > 0 {
		mask := int64(1)<<m.txBits - 1
		if addr&mask != 0 {
			return nil, curated.Errorf("memory: address %#x is not aligned to the %d-bit transaction size", addr, m.txBits)
		}
		addr >>= m.txBits
	}

	addrVec := make([]int, int(dram.Column)+1)
	for i := range addrVec {
		addrVec[i] = -1
	}

	rem := addr
	for _, level := range m.fieldOrder() {
		n := m.counts.N[level]
		if n <= 0 {
			continue
		}
		bits := addrBits(n)
		if bits == 0 {
			addrVec[level] = 0
			continue
		}
		addrVec[level] = int(rem & (int64(1)<<bits - 1))
		rem >>= bits
	}
	return addrVec, nil
}

// Send decodes req.Addr, stamps its AddrVec, and routes it to the owning
// channel's controller. It returns false (unchanged request, caller
// retries) if decoding fails or that channel's queue is full.
func (m *Memory) Send(req *dram.Request) bool {
	addrVec, err := m.Decode(req.Addr)
	if err != nil {
		return false
	}
	req.AddrVec = addrVec
	ch := addrVec[dram.Channel]
	if ch < 0 || ch >= len(m.ctrls) {
		return false
	}
	return m.ctrls[ch].Enqueue(req)
}

// PendingRequests sums every channel's queue occupancy, the way a driver
// decides when the simulation has drained.
func (m *Memory) PendingRequests() int {
	total := 0
	for _, c := range m.ctrls {
		total += c.QueueLength()
	}
	return total
}

// Tick advances every channel by one cycle.
func (m *Memory) Tick(env dram.Environment) {
	for _, c := range m.ctrls {
		c.Tick(env)
	}
}

// Channels returns the per-channel controllers, in channel-id order.
func (m *Memory) Channels() []*controller.Controller { return m.ctrls }
