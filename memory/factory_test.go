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

package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CMU-SAFARI/ramulator-sub000/memory"
)

func baseOptions() memory.Options {
	return memory.Options{
		Standard:   "DDR3",
		Org:        "DDR3_2Gb_x8",
		Speed:      "DDR3_1600K",
		Channels:   1,
		Ranks:      1,
		Mapping:    memory.RoBaRaCoCh,
		QueueDepth: 64,
	}
}

func TestBuildDDR3(t *testing.T) {
	opts := baseOptions()
	m, err := memory.Build(opts)
	require.NoError(t, err)
	assert.Len(t, m.Channels(), 1)
}

func TestBuildSALPMASA(t *testing.T) {
	opts := baseOptions()
	opts.Standard = "SALP-MASA"
	opts.SubArrays = 4
	m, err := memory.Build(opts)
	require.NoError(t, err)
	assert.Len(t, m.Channels(), 1)
}

func TestBuildDSARP(t *testing.T) {
	opts := baseOptions()
	opts.Standard = "DSARP"
	m, err := memory.Build(opts)
	require.NoError(t, err)
	assert.Len(t, m.Channels(), 1)
}

func TestBuildTLDRAM(t *testing.T) {
	opts := baseOptions()
	opts.Standard = "TLDRAM"
	m, err := memory.Build(opts)
	require.NoError(t, err)
	assert.Len(t, m.Channels(), 1)
}

func TestBuildHMC(t *testing.T) {
	opts := baseOptions()
	opts.Standard = "HMC"
	opts.Channels = 8
	opts.Org = "HMC_4GB_x32"
	opts.Speed = "HMC_2500"
	m, err := memory.Build(opts)
	require.NoError(t, err)
	assert.Len(t, m.Channels(), 8)
}

func TestBuildRejectsUnknownStandard(t *testing.T) {
	opts := baseOptions()
	opts.Standard = "MADE-UP"
	_, err := memory.Build(opts)
	assert.Error(t, err)
}

func TestBuildRejectsNonPowerOfTwoChannels(t *testing.T) {
	opts := baseOptions()
	opts.Channels = 3
	_, err := memory.Build(opts)
	assert.Error(t, err)
}

func TestBuildRejectsNonPowerOfTwoRanks(t *testing.T) {
	opts := baseOptions()
	opts.Ranks = 0
	_, err := memory.Build(opts)
	assert.Error(t, err)
}

func TestBuildRejectsLPDDR4WithOneChannel(t *testing.T) {
	opts := baseOptions()
	opts.Standard = "LPDDR4"
	opts.Org = "LPDDR4_8Gb_x16"
	opts.Speed = "LPDDR4_3200"
	opts.Channels = 1
	_, err := memory.Build(opts)
	assert.Error(t, err)
}

func TestBuildRejectsWideIOWithWrongChannelCount(t *testing.T) {
	opts := baseOptions()
	opts.Standard = "WideIO"
	opts.Org = "WideIO_8Gb_x128"
	opts.Speed = "WideIO_266"
	opts.Channels = 1
	_, err := memory.Build(opts)
	assert.Error(t, err)
}
