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

package dram

// TimingEntry is one row of a (level, command) timing table: after Cmd is
// issued at clock T, the next issue of TimingEntry.Cmd on the same node
// (Sibling=false) or on each sibling (Sibling=true) must be at or after
// T+Val. When Dist>1 the constraint looks at the Dist-th most recent issue
// of the *originating* command rather than the most recent one (tFAW's
// 4-activate window uses Dist=4). Sibling entries always carry Dist=1.
type TimingEntry struct {
	Cmd     Command
	Dist    int
	Val     int
	Sibling bool
}

// Counts gives, for one organization, the number of children at every
// level of the hierarchy plus the column prefetch size and channel width
// in bits. Counts[Row] and Counts[Column] are never instantiated as nodes
// (see Build) but are required to decode an address vector and to
// compute the read latency / transaction alignment.
type Counts struct {
	N              [numLevels]int
	PrefetchSize   int
	ChannelWidthBits int
}

// Environment carries operating conditions a Spec's timing may depend on.
// Only ALDRAM uses Temperature today; every other Spec's RefreshTiming is a
// no-op that ignores it.
type Environment struct {
	Temperature Temperature
}

type Temperature int

const (
	TempNormal Temperature = iota
	TempHigh
)

// Spec is the declarative description of one DRAM standard, instantiated
// for a specific organization/speed-bin pair. The generic Node tree in
// this package never special-cases a standard name; it only calls through
// Spec.
type Spec interface {
	// Name identifies the standard, e.g. "DDR3", "HMC".
	Name() string

	// Levels returns, root-first, the hierarchy levels this standard
	// instantiates as Nodes. Row and Column are never included: the
	// deepest node (a Bank, or a SubArray under SALP) carries row state
	// directly (see Node.RowState) and Column is never represented by a
	// Node at all.
	Levels() []Level

	Counts() Counts

	// Scope is the deepest level at which cmd's timing constraints and
	// prerequisite checks must be evaluated.
	Scope(cmd Command) Level

	// Translate gives the first-preference command that realizes a
	// request of the given type.
	Translate(t RequestType) Command

	Start(level Level) State

	IsOpening(cmd Command) bool
	IsAccessing(cmd Command) bool
	IsClosing(cmd Command) bool
	IsRefreshing(cmd Command) bool

	// Prereq returns, for cmd applied to childID at node n (whose level is
	// the lookup key), either cmd itself (no prerequisite at this level)
	// or a different command that must be issued first.
	Prereq(n *Node, cmd Command, childID int) Command

	// Lambda applies the state-mutation effect of issuing cmd at node n
	// against childID.
	Lambda(n *Node, cmd Command, childID int)

	// RowHit/RowOpen report, for an access at node n against childID,
	// whether it would land on the currently open row, or on some open
	// row other than the one requested. Either may be nil for a
	// (level,cmd) pair where the distinction does not apply.
	RowHit(n *Node, cmd Command, childID int) bool
	RowOpen(n *Node, cmd Command, childID int) bool

	// Timing returns the timing table for (n.Level(), cmd).
	Timing(level Level, cmd Command) []TimingEntry

	// ReadLatency is the number of cycles between the completing RD/RDA
	// issue and the request's callback firing.
	ReadLatency() int

	// RefreshTiming recomputes any environment-dependent timing (only
	// ALDRAM overrides this meaningfully) and returns true if anything
	// changed.
	RefreshTiming(env Environment) bool
}
