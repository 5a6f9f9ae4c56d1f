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

package paths_test

import (
	"testing"

	"github.com/CMU-SAFARI/ramulator-sub000/paths"
	"github.com/CMU-SAFARI/ramulator-sub000/test"
)

func TestPaths(t *testing.T) {
	pth, err := paths.ResourcePath("traces/chan0", "rank0.cmdtrace")
	test.Equate(t, err, nil)
	test.Equate(t, filepathSuffix(pth), "/.ramulator/traces/chan0/rank0.cmdtrace")

	pth, err = paths.ResourcePath("traces/chan0", "")
	test.Equate(t, err, nil)
	test.Equate(t, filepathSuffix(pth), "/.ramulator/traces/chan0")

	pth, err = paths.ResourcePath("", "config.yaml")
	test.Equate(t, err, nil)
	test.Equate(t, filepathSuffix(pth), "/.ramulator/config.yaml")

	pth, err = paths.ResourcePath("", "")
	test.Equate(t, err, nil)
	test.Equate(t, filepathSuffix(pth), "/.ramulator")
}

// filepathSuffix strips everything up to and including the home directory
// component, so assertions don't depend on the test environment's $HOME.
func filepathSuffix(pth string) string {
	const marker = "/.ramulator"
	if idx := indexOf(pth, marker); idx >= 0 {
		return pth[idx:]
	}
	return pth
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
