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

// Package dram is the generic, standard-agnostic DRAM command-timing core:
// the node tree that represents a channel's hierarchy and the declarative
// Spec description that each supported standard (DDR3, DDR4, LPDDR3/4,
// GDDR5, WideIO/2, HBM, HMC, SALP, ALDRAM, TLDRAM, DSARP, PCM, STT-MRAM)
// populates. Nothing in this package knows the name of a specific standard;
// concrete standards live in sibling packages (dram/standards, dram/salp,
// dram/tldram, dram/hmc) and are consumed only through the Spec interface.
package dram
