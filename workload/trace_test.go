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

package workload_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/workload"
)

func TestLoadParsesReadAndWriteLines(t *testing.T) {
	tr, err := workload.Load(strings.NewReader("0 0x100 0x200\n5 0x300\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
}

func TestLoadSkipsBlankLines(t *testing.T) {
	tr, err := workload.Load(strings.NewReader("0 0x100\n\n   \n5 0x300\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := workload.Load(strings.NewReader("not-a-number\n"))
	assert.Error(t, err)
}

type recordingSender struct {
	sent []*dram.Request
	full bool
}

func (s *recordingSender) Send(req *dram.Request) bool {
	if s.full {
		return false
	}
	s.sent = append(s.sent, req)
	return true
}

func TestDriverIssuesReadThenPairedWrite(t *testing.T) {
	tr, err := workload.Load(strings.NewReader("0 0x100 0x200\n"))
	require.NoError(t, err)

	sender := &recordingSender{}
	d := workload.NewDriver(tr, sender)

	d.Tick() // queues the read and its paired write
	assert.Len(t, sender.sent, 0)

	d.Tick() // both drain in the same cycle (sender never reports full)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, dram.ReqRead, sender.sent[0].Type)
	assert.Equal(t, int64(0x100), sender.sent[0].Addr)
	assert.Equal(t, dram.ReqWrite, sender.sent[1].Type)
	assert.Equal(t, int64(0x200), sender.sent[1].Addr)

	assert.Equal(t, int64(2), d.Issued)
}

func TestDriverRetriesOnBackpressure(t *testing.T) {
	tr, err := workload.Load(strings.NewReader("0 0x100\n"))
	require.NoError(t, err)

	sender := &recordingSender{full: true}
	d := workload.NewDriver(tr, sender)

	d.Tick() // queues the read
	d.Tick() // attempts to send it, blocked
	assert.Len(t, sender.sent, 0)
	assert.Equal(t, int64(0), d.Issued)

	sender.full = false
	d.Tick()
	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(1), d.Issued)
}

func TestDriverFinishesOnceTraceDrainsAndQueueEmpties(t *testing.T) {
	tr, err := workload.Load(strings.NewReader("2 0x100\n"))
	require.NoError(t, err)

	sender := &recordingSender{}
	d := workload.NewDriver(tr, sender)

	d.Tick() // queues the read, records its 2-cycle bubble
	assert.False(t, d.Finished(0))

	d.Tick() // sends the read, bubble counts down
	assert.True(t, d.Finished(0))
}
