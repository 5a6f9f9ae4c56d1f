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

import (
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/refresh"
)

// salpSpec is the part of salp's exported Spec beyond plain dram.Spec that
// NewSALP needs to pick the right refresh engine.
type salpSpec interface {
	dram.Spec
	IsPerBank() bool
	NREFIpb() int
	Banks() int
	SubArrays() int
	RefreshParallel() bool
}

// dsarpRefresh adapts refresh.DSARPEngine's Tick(nrefipb, writeMode, view)
// onto the Refresher interface the plain per-cycle Tick expects, reading
// the owning controller's current write-mode flag each cycle the same
// way the original's early_inject_refresh reads ctrl->write_mode.
type dsarpRefresh struct {
	eng     *refresh.DSARPEngine
	nrefipb int64
	ctrl    *Controller
}

func (d *dsarpRefresh) Tick(dram.Environment) {
	d.eng.Tick(d.nrefipb, d.ctrl.writeMode, d.ctrl)
}

// NewSALP builds a Controller for the SALP-1/SALP-2/SALP-MASA/DSARP family.
// SALP-1/SALP-2 refresh the whole rank at once, same as New's default
// all-bank engine (already configured from spec.NREFI's NREFIab). DSARP and
// SALP-MASA instead refresh bank-by-bank (original_source/src/DSARP.cpp's
// per-bank inject_refresh), so this substitutes a refresh.DSARPEngine;
// only DSARP additionally gets its skip/early-pull-in/sub-array-cycling
// behavior (RefreshParallel), since SALP-MASA isn't part of DSARP.h's
// Type enum in the original and has no such mechanism there.
func NewSALP(cfg Config, sp salpSpec, ranks int) *Controller {
	c := New(cfg)
	if !sp.IsPerBank() {
		return c
	}
	eng := refresh.NewDSARP(c, ranks, sp.Banks(), sp.SubArrays(), sp.RefreshParallel(), cfg.Log, cfg.Topics)
	c.Refresh = &dsarpRefresh{eng: eng, nrefipb: int64(sp.NREFIpb()), ctrl: c}
	return c
}
