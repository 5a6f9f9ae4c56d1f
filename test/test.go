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

// Package test provides small assertion helpers shared by the test suites
// of most packages in this module. It deliberately does not depend on
// a third-party assertion library: the helpers here are a thin,
// domain-neutral layer over testing.T and are used in packages (like dram)
// that must stay import-cycle free from anything heavier.
package test

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

// Equate is an alias of ExpectEquality, kept because some callers read
// better as "equate" than "expect equality".
func Equate(t *testing.T, a, b interface{}) {
	t.Helper()
	ExpectEquality(t, a, b)
}

// ExpectEquality fails the test if a and b are not equal, as judged by
// reflect.DeepEqual.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality fails the test if a and b are equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate fails the test if a and b (as float64s) differ by more
// than tolerance.
func ExpectApproximate(t *testing.T, a, b float64, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("expected approximate equality: %v !~ %v (tolerance %v)", a, b, tolerance)
	}
}

// ExpectFailure fails the test unless v is a falsy result: false or a
// non-nil error.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if !isFailure(v) {
		t.Errorf("expected failure, got %v", v)
	}
}

// ExpectSuccess fails the test unless v is a truthy result: true or a nil
// error.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if isFailure(v) {
		t.Errorf("expected success, got %v", v)
	}
}

func isFailure(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return !x
	case error:
		return x != nil
	default:
		panic(fmt.Sprintf("test: unsupported type for success/failure check: %T", v))
	}
}
