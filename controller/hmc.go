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

package controller

// NewHMC builds a Controller for HMC. Its hierarchy is an ordinary
// ddrcommon-built Spec with Vault standing in for Rank and BankGroup
// always present (dram/hmc), so no hook needs overriding here: RankIDs
// already walks whatever the channel's direct children are, and a
// Request.BurstCount above 1 drives the generic multi-beat CAS handling in
// Tick for any standard (the memory package leaves it at zero). This
// constructor exists for symmetry with NewSALP/NewTLDRAM and as the
// documented place a future HMC-specific hook would go.
func NewHMC(cfg Config) *Controller {
	return New(cfg)
}
