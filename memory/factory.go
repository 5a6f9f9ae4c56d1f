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

package memory

import (
	"io"

	"github.com/CMU-SAFARI/ramulator-sub000/controller"
	"github.com/CMU-SAFARI/ramulator-sub000/curated"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/hmc"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/salp"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/standards"
	"github.com/CMU-SAFARI/ramulator-sub000/dram/tldram"
	"github.com/CMU-SAFARI/ramulator-sub000/logger"
	"github.com/CMU-SAFARI/ramulator-sub000/rowpolicy"
	"github.com/CMU-SAFARI/ramulator-sub000/scheduler"
	"github.com/CMU-SAFARI/ramulator-sub000/stats"
	"github.com/CMU-SAFARI/ramulator-sub000/trace"
	"github.com/prometheus/client_golang/prometheus"
)

// Options collects everything Build needs: the configuration surface the
// core honors, plus the ambient services (logging, stats registry, trace
// destinations) every channel is wired against.
type Options struct {
	Standard  string
	Org       string
	Speed     string
	Channels  int
	Ranks     int
	SubArrays int // SALP/DSARP only

	Mapping    Mapping
	Scheduler  scheduler.Type
	RowPolicy  rowpolicy.Type
	QueueDepth int

	Log    *logger.Logger
	Topics *logger.Topics

	RecordCmdTrace bool
	PrintCmdTrace  bool
	CmdTracePrefix string
	Stdout         io.Writer

	Registry *prometheus.Registry
}

// salpFull is everything controller.NewSALP needs from a SALP/DSARP Spec
// beyond plain dram.Spec; satisfied structurally by *salp's unexported
// spec type without either package naming the other's interface.
type salpFull interface {
	dram.Spec
	IsPerBank() bool
	NREFIpb() int
	Banks() int
	SubArrays() int
	RefreshParallel() bool
}

// Build assembles a Spec for opts.Standard/Org/Speed and one Controller
// per channel, wired through the requested mapping, scheduler and
// row-policy, and returns the Memory fronting them.
func Build(opts Options) (*Memory, error) {
	if opts.Channels <= 0 || opts.Channels&(opts.Channels-1) != 0 {
		return nil, curated.Errorf("memory: channels must be a positive power of two, got %d", opts.Channels)
	}
	if opts.Ranks <= 0 || opts.Ranks&(opts.Ranks-1) != 0 {
		return nil, curated.Errorf("memory: ranks must be a positive power of two, got %d", opts.Ranks)
	}

	spec, err := buildSpec(opts)
	if err != nil {
		return nil, err
	}

	banksPerGroup := spec.Counts().N[dram.Bank]

	ctrls := make([]*controller.Controller, opts.Channels)
	for i := 0; i < opts.Channels; i++ {
		root := dram.Build(spec, spec.Levels(), 0, spec.Counts())

		var sinks trace.Multi
		if opts.RecordCmdTrace {
			fs, err := trace.NewCmdFileSink(i, opts.Ranks, spec.Name(), banksPerGroup, opts.CmdTracePrefix)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, fs)
		}
		if opts.PrintCmdTrace && opts.Stdout != nil {
			sinks = append(sinks, trace.NewStdoutSink(opts.Stdout))
		}
		var sink trace.Sink
		if len(sinks) > 0 {
			sink = sinks
		}

		cfg := controller.Config{
			ChannelID:  i,
			Channel:    root,
			Spec:       spec,
			Scheduler:  opts.Scheduler,
			RowPolicy:  opts.RowPolicy,
			QueueDepth: opts.QueueDepth,
			Log:        opts.Log,
			Topics:     opts.Topics,
			Sink:       sink,
			Stat:       stats.NewChannel(i, opts.Registry),
		}

		switch sp := spec.(type) {
		case salpFull:
			ctrls[i] = controller.NewSALP(cfg, sp, opts.Ranks)
		default:
			switch spec.Name() {
			case "TLDRAM":
				ctrls[i] = controller.NewTLDRAM(cfg)
			case "HMC":
				ctrls[i] = controller.NewHMC(cfg)
			default:
				ctrls[i] = controller.New(cfg)
			}
		}
	}

	return New(opts.Mapping, spec.Levels(), spec.Counts(), ctrls)
}

func buildSpec(opts Options) (dram.Spec, error) {
	switch opts.Standard {
	case "DDR3":
		return standards.NewDDR3(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "DDR4":
		return standards.NewDDR4(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "LPDDR3":
		return standards.NewLPDDR3(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "LPDDR4":
		if opts.Channels < 2 {
			return nil, curated.Errorf("memory: LPDDR4 requires channels >= 2, got %d", opts.Channels)
		}
		return standards.NewLPDDR4(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "GDDR5":
		return standards.NewGDDR5(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "WideIO":
		if opts.Channels != 4 {
			return nil, curated.Errorf("memory: WideIO requires channels == 4, got %d", opts.Channels)
		}
		return standards.NewWideIO(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "WideIO2":
		if opts.Channels != 4 && opts.Channels != 8 {
			return nil, curated.Errorf("memory: WideIO2 requires channels in {4,8}, got %d", opts.Channels)
		}
		return standards.NewWideIO2(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "HBM":
		if opts.Channels != 8 {
			return nil, curated.Errorf("memory: HBM requires channels == 8, got %d", opts.Channels)
		}
		return standards.NewHBM(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "PCM":
		return standards.NewPCM(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "STTMRAM":
		return standards.NewSTTMRAM(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "ALDRAM":
		return standards.NewALDRAM(opts.Org, opts.Speed, opts.Channels, opts.Ranks)
	case "TLDRAM":
		return tldram.New(tldramConfig(opts))
	case "HMC":
		// vaults stand in for the channel count the rest of the core sees
		// (hmc.go's doc comment); banksPerGroup/groups are fixed at the
		// cube geometry HMC_4GB_x32 assumes (8 bank groups x 2 banks).
		return hmc.NewHMC(opts.Org, opts.Speed, opts.Channels, 2, 8)
	case "SALP-1":
		return salp.New(salpConfig(opts, salp.SALP1))
	case "SALP-2":
		return salp.New(salpConfig(opts, salp.SALP2))
	case "SALP-MASA":
		return salp.New(salpConfig(opts, salp.SALPMASA))
	case "DSARP":
		return salp.New(salpConfig(opts, salp.DSARP))
	default:
		return nil, curated.Errorf("memory: unknown standard %q", opts.Standard)
	}
}

// salpTimings is DDR3-1600K's timing set (src/DSARP.cpp shares DDR3's
// speed tables across the SALP family) plus the per-bank and all-bank
// refresh values; ACT/PRE timing keeps the DDR3 values unchanged, and the
// only SALP-specific spacing is dram/salp's SubArray-level subarrayRRD.
var salpTimings = salp.Timings{
	NBL: 4, NCCD: 4, NRTRS: 2, NCL: 11, NRCD: 11, NRP: 11, NCWL: 8,
	NRAS: 28, NRC: 39, NRTP: 6, NWTR: 6, NWR: 12, NRRD: 5, NFAW: 24,
	NRFCpb: 88, NRFCab: 160, NREFIpb: 780, NREFIab: 6240, NXP: 5, NXS: 512,
}

func salpConfig(opts Options, variant salp.Variant) salp.Config {
	banks := 8
	if opts.SubArrays <= 0 {
		opts.SubArrays = 8
	}
	return salp.Config{
		Variant:   variant,
		Channels:  opts.Channels,
		Ranks:     opts.Ranks,
		Banks:     banks,
		SubArrays: opts.SubArrays,
		Rows:      1 << 13,
		Cols:      1 << 10,
		T:         salpTimings,
	}
}

// tldramTimings mirrors DDR3-1600K for the main segment and halves
// nRCD/nRAS for the fast segment, per Lee et al. HPCA 2013's reported
// 2-3x tRCD/tRAS reduction for the near segment.
var tldramTimings = tldram.Timings{
	NBL: 4, NCCD: 4, NRTRS: 2, NCL: 11, NCWL: 8,
	NRCDf: 5, NRPf: 5, NRASf: 14, NRCf: 19,
	NRCDm: 11, NRPm: 11, NRASm: 28, NRCm: 39,
	NRTP: 6, NWTR: 6, NWR: 12, NRRD: 5, NFAW: 24,
	NRFC: 160, NREFI: 6240, NMIG: 14,
}

func tldramConfig(opts Options) tldram.Config {
	return tldram.Config{
		Channels: opts.Channels,
		Ranks:    opts.Ranks,
		Banks:    8,
		Rows:     1 << 16,
		Cols:     1 << 10,
		T:        tldramTimings,
	}
}
