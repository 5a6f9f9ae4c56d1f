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

import "github.com/CMU-SAFARI/ramulator-sub000/dram"

// NewTLDRAM builds a Controller for TLDRAM's two-segment bank. A
// read/write that would need the slow segment's ACTM (its row isn't
// currently migrated into the fast segment) is reclassified, on its first
// dispatch cycle, as an EXTENSION request: firstCmd then resolves through
// MIG instead of ACTM, so the row is copied into the fast segment before
// the request is retired. This models the migration's latency as the
// request's own service time rather than re-enqueueing it afterward.
func NewTLDRAM(cfg Config) *Controller {
	c := New(cfg)
	c.prepare = func(req *dram.Request) {
		if !req.IsFirstCommand {
			return
		}
		if req.Type != dram.ReqRead && req.Type != dram.ReqWrite {
			return
		}
		if c.firstCmd(req) == dram.ACTM {
			req.Type = dram.ReqExtension
		}
	}
	return c
}
