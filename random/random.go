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

// Package random provides a source of randomness whose sequence is a pure
// function of the simulator's own clock rather than of wall-clock time.
//
// A fixed request stream and fixed policy parameters must always issue the
// same command sequence, run after run. The refresh engine's early pull-in
// policy picks an idle bank "at random" (DSARP/SARP), which would break
// that guarantee if backed by math/rand's global source. Seeding the
// generator from the clock at the point of use keeps the simulation
// reproducible: the same request stream run twice, or rewound and
// replayed, makes exactly the same "random" choices every time.
package random

import (
	"math/rand"
)

// ClockSource is anything that can report the current simulator clock.
type ClockSource interface {
	Clk() int64
}

// Random generates clock-seeded pseudo-random numbers.
type Random struct {
	clocks ClockSource

	// ZeroSeed forces the generator to behave as though the clock were
	// always zero. It exists for testing: it makes two independently
	// constructed Random values, driven by different clocks, agree.
	ZeroSeed bool
}

// NewRandom creates a Random driven by the given clock source.
func NewRandom(clocks ClockSource) *Random {
	return &Random{clocks: clocks}
}

func (r *Random) seed() uint64 {
	if r.ZeroSeed {
		return 0
	}
	return uint64(r.clocks.Clk())
}

func (r *Random) source() *rand.Rand {
	return rand.New(rand.NewSource(int64(r.seed())))
}

// Rewindable returns a number in [0, n) derived solely from the current
// clock value and n. Calling it repeatedly with the same clock and the same
// n always returns the same result: it is safe to call from within a single
// cycle's decision-making without the result depending on how many times it
// has already been called this cycle.
func (r *Random) Rewindable(n int) int {
	if n <= 0 {
		return 0
	}
	return r.source().Intn(n)
}
