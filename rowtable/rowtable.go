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

// Package rowtable tracks, per bank (or subarray), which row is currently
// open and how many times it has been hit. Grounded on
// original_source/src/Scheduler.h's RowTable: a map keyed by the address
// prefix up to (but excluding) Row, with an Entry recording the open row,
// its hit count, and the clock of its last access.
package rowtable

import (
	"sort"
	"strconv"
	"strings"

	"github.com/CMU-SAFARI/ramulator-sub000/assert"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
)

// Entry is the bookkeeping kept for one open row group (a bank or, under
// SALP, a subarray).
type Entry struct {
	Row       int
	Hits      int
	Timestamp int64
}

// Table maps a row-group key (the address prefix down to but excluding
// Row, joined as a string since Go slices aren't comparable/hashable) to
// its Entry.
type Table struct {
	rowLevel dram.Level
	entries  map[string]*Entry
	keys     map[string][]int
}

func New(rowLevel dram.Level) *Table {
	return &Table{rowLevel: rowLevel, entries: make(map[string]*Entry), keys: make(map[string][]int)}
}

func groupKey(addrVec []int, rowLevel dram.Level) (string, []int) {
	n := int(rowLevel)
	if n > len(addrVec) {
		n = len(addrVec)
	}
	group := addrVec[:n]
	var b strings.Builder
	for i, v := range group {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String(), group
}

// Update applies the effect of issuing cmd at addrVec/clk, per
// spec->is_opening/is_accessing/is_closing.
func (t *Table) Update(spec dram.Spec, cmd dram.Command, addrVec []int, clk int64) {
	key, group := groupKey(addrVec, t.rowLevel)
	row := -1
	if int(t.rowLevel) < len(addrVec) {
		row = addrVec[t.rowLevel]
	}

	if spec.IsOpening(cmd) {
		t.entries[key] = &Entry{Row: row, Hits: 0, Timestamp: clk}
		t.keys[key] = append([]int(nil), group...)
	}

	if spec.IsAccessing(cmd) {
		e, ok := t.entries[key]
		assert.Require(ok, "rowtable: access to unopened row group")
		assert.Require(e.Row == row, "rowtable: access row mismatch")
		e.Hits++
		e.Timestamp = clk
	}

	if spec.IsClosing(cmd) {
		scope := spec.Scope(cmd)
		if spec.IsAccessing(cmd) {
			// RDA/WRA close precisely the row they just accessed.
			scope = t.rowLevel - 1
		}
		removed := 0
		for k, g := range t.keys {
			if prefixEqual(g, group, int(scope)+1) {
				delete(t.entries, k)
				delete(t.keys, k)
				removed++
			}
		}
		assert.Require(removed > 0, "rowtable: closing command removed no entries")
	}
}

func prefixEqual(a, b []int, n int) bool {
	if len(a) < n || len(b) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// GetHits returns the hit count for addrVec's row group. If toOpenedRow is
// false (the common case) it only counts hits against the row addrVec
// itself names; if true it reports the open row's hit count regardless of
// which row addrVec names.
func (t *Table) GetHits(addrVec []int, toOpenedRow bool) int {
	key, _ := groupKey(addrVec, t.rowLevel)
	e, ok := t.entries[key]
	if !ok {
		return 0
	}
	if !toOpenedRow && int(t.rowLevel) < len(addrVec) && e.Row != addrVec[t.rowLevel] {
		return 0
	}
	return e.Hits
}

// GetOpenRow returns the currently open row for addrVec's group, or -1 if
// none is open.
func (t *Table) GetOpenRow(addrVec []int) int {
	key, _ := groupKey(addrVec, t.rowLevel)
	e, ok := t.entries[key]
	if !ok {
		return -1
	}
	return e.Row
}

// Each calls fn for every open row group in ascending key order, mirroring
// the original's std::map<vector<int>, Entry> (ordered lexicographically
// by address prefix) so that victim selection stays deterministic across
// runs with the same request stream.
func (t *Table) Each(fn func(group []int, e *Entry)) {
	keys := make([]string, 0, len(t.keys))
	for k := range t.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(t.keys[k], t.entries[k])
	}
}
