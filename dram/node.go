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

// noClock is the sentinel meaning "no constraint recorded yet" for both
// Node.next and Node.prev entries, mirroring the source's use of -1.
const noClock int64 = -1

// Node is one vertex of a channel's runtime hierarchy tree. The tree is
// built once by Build and then mutated for the lifetime of the simulation
// by Update; Decode/Check/GetNext are read-only queries against it.
//
// A Bank (or SubArray, for SALP/DSARP) node never instantiates its Row
// children: RowState tracks, for each currently-relevant row id, that
// row's State directly on the node that owns it.
type Node struct {
	spec  Spec
	level Level
	id    int

	parent   *Node
	children []*Node

	// childLevel is the Level of this node's children, valid only when
	// len(children) > 0. It is not simply level+1: the Level enum has
	// slots (Vault, BankGroup, SubArray) that only some standards use.
	childLevel Level

	state    State
	rowState map[int]State

	curClk int64
	next   [numCommands]int64
	prev   [numCommands][]int64
}

// Build constructs the node at levels[depth] and recursively constructs
// its children down through levels[len(levels)-1], sized from counts. Row
// and Column are never included in levels, so recursion stops naturally
// once it has built the last level named there (ordinarily Bank, or
// SubArray for SALP/DSARP).
func Build(spec Spec, levels []Level, depth int, counts Counts) *Node {
	level := levels[depth]
	n := &Node{
		spec:  spec,
		level: level,
		state: spec.Start(level),
	}

	for cmd := 0; cmd < int(numCommands); cmd++ {
		n.next[cmd] = noClock
	}
	for cmd := 0; cmd < int(numCommands); cmd++ {
		dist := 0
		for _, t := range spec.Timing(level, Command(cmd)) {
			if t.Dist > dist {
				dist = t.Dist
			}
		}
		if dist == 0 {
			continue
		}
		hist := make([]int64, dist)
		for i := range hist {
			hist[i] = noClock
		}
		n.prev[cmd] = hist
	}

	if level == Bank || level == SubArray {
		n.rowState = make(map[int]State)
	}

	if depth+1 >= len(levels) {
		return n
	}
	childLevel := levels[depth+1]
	childMax := counts.N[childLevel]
	if childMax == 0 {
		return n
	}
	n.childLevel = childLevel
	n.children = make([]*Node, childMax)
	for i := 0; i < childMax; i++ {
		c := Build(spec, levels, depth+1, counts)
		c.parent = n
		c.id = i
		n.children[i] = c
	}
	return n
}

func (n *Node) Level() Level       { return n.level }
func (n *Node) ID() int            { return n.id }
func (n *Node) Parent() *Node      { return n.parent }
func (n *Node) Children() []*Node  { return n.children }
func (n *Node) State() State       { return n.state }
func (n *Node) SetState(s State)   { n.state = s }
func (n *Node) CurClk() int64      { return n.curClk }

// RowState reports the tracked state of row, and whether an entry exists
// at all (absence means the row is implicitly Closed).
func (n *Node) RowState(row int) (State, bool) {
	s, ok := n.rowState[row]
	return s, ok
}

func (n *Node) SetRowState(row int, s State) {
	if n.rowState == nil {
		n.rowState = make(map[int]State)
	}
	n.rowState[row] = s
}

func (n *Node) ClearRowState() {
	for k := range n.rowState {
		delete(n.rowState, k)
	}
}

func (n *Node) DeleteRowState(row int) {
	delete(n.rowState, row)
}

func (n *Node) childID(addr []int) int {
	if len(n.children) == 0 {
		return -1
	}
	return addr[n.childLevel]
}

// AddrAt returns addr's component at this node's child level, or -1 if n
// has no children (a leaf of the instantiated tree). Exported for callers
// outside this package that need to walk the tree the same way Decode/
// Check/Update do, such as controller.locate.
func (n *Node) AddrAt(addr []int) int {
	return n.childID(addr)
}

// hookID returns the id a Spec's per-(level,cmd) hooks (Prereq, Lambda,
// RowHit, RowOpen) expect as their childID argument: the structural child
// index for an internal node, or addr's Row component for a leaf node
// (Bank, or SubArray under SALP/DSARP) — Row is never itself instantiated
// as a Node, so a leaf's row-state lookups are keyed by addr[Row] rather
// than by a child that doesn't exist.
func (n *Node) hookID(addr []int) int {
	if len(n.children) > 0 {
		return addr[n.childLevel]
	}
	if int(Row) < len(addr) {
		return addr[Row]
	}
	return -1
}

// Decode walks from n down toward cmd's scope, asking the spec's
// prerequisite table at each level; the first level that names a
// different command short-circuits the walk.
func (n *Node) Decode(cmd Command, addr []int) Command {
	if pc := n.spec.Prereq(n, cmd, n.hookID(addr)); pc != cmd {
		return pc
	}
	childID := n.childID(addr)
	if childID < 0 {
		return cmd
	}
	return n.children[childID].Decode(cmd, addr)
}

// Check reports whether cmd may legally be issued against addr at clk,
// honoring every level's next[cmd] constraint down to cmd's scope.
func (n *Node) Check(cmd Command, addr []int, clk int64) bool {
	if nx := n.next[cmd]; nx != noClock && clk < nx {
		return false
	}
	childID := n.childID(addr)
	if childID < 0 || n.level == n.spec.Scope(cmd) {
		return true
	}
	return n.children[childID].Check(cmd, addr, clk)
}

// GetNext returns the earliest clock at which cmd could be issued against
// addr, the max of cur_clk and every next[cmd] along the path to scope.
func (n *Node) GetNext(cmd Command, addr []int) int64 {
	nextClk := n.curClk
	if n.next[cmd] != noClock && n.next[cmd] > nextClk {
		nextClk = n.next[cmd]
	}
	node := n
	scope := n.spec.Scope(cmd)
	for node.level != scope && len(node.children) > 0 {
		childID := addr[node.childLevel]
		if childID < 0 {
			break
		}
		node = node.children[childID]
		if node.next[cmd] != noClock && node.next[cmd] > nextClk {
			nextClk = node.next[cmd]
		}
	}
	return nextClk
}

// Update records that cmd was issued against addr at clk: applies the
// spec's state-mutation lambda down to cmd's scope, then propagates the
// timing table's effect through the whole subtree.
func (n *Node) Update(cmd Command, addr []int, clk int64) {
	n.curClk = clk
	n.updateState(cmd, addr)
	n.updateTiming(cmd, addr, clk)
}

func (n *Node) updateState(cmd Command, addr []int) {
	n.spec.Lambda(n, cmd, n.hookID(addr))
	if n.level == n.spec.Scope(cmd) || len(n.children) == 0 {
		return
	}
	n.children[addr[n.childLevel]].updateState(cmd, addr)
}

func (n *Node) updateTiming(cmd Command, addr []int, clk int64) {
	if n.id != addr[n.level] {
		for _, t := range n.spec.Timing(n.level, cmd) {
			if !t.Sibling {
				continue
			}
			future := clk + int64(t.Val)
			if future > n.next[t.Cmd] {
				n.next[t.Cmd] = future
			}
		}
		return
	}

	if hist := n.prev[cmd]; len(hist) > 0 {
		copy(hist[1:], hist[:len(hist)-1])
		hist[0] = clk
	}

	for _, t := range n.spec.Timing(n.level, cmd) {
		if t.Sibling {
			continue
		}
		past := n.prev[cmd][t.Dist-1]
		if past == noClock {
			continue
		}
		future := past + int64(t.Val)
		if future > n.next[t.Cmd] {
			n.next[t.Cmd] = future
		}
	}

	if len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.updateTiming(cmd, addr, clk)
	}
}
