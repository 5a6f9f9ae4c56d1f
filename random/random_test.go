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

package random_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/random"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

type fixedClock struct {
	clk int64
}

func (c *fixedClock) Clk() int64 { return c.clk }

func TestRandomDeterministic(t *testing.T) {
	a := random.NewRandom(&fixedClock{clk: 100})
	b := random.NewRandom(&fixedClock{clk: 100})

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestRandomZeroSeedIgnoresClock(t *testing.T) {
	a := random.NewRandom(&fixedClock{clk: 100})
	b := random.NewRandom(&fixedClock{clk: 999999})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Rewindable(i), b.Rewindable(i))
	}
}

func TestRandomBounds(t *testing.T) {
	r := random.NewRandom(&fixedClock{clk: 42})
	for i := 0; i < 100; i++ {
		v := r.Rewindable(8)
		if v < 0 || v >= 8 {
			t.Fatalf("Rewindable(8) out of range: %d", v)
		}
	}
}
