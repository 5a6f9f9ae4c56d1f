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

package config

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/CMU-SAFARI/ramulator-sub000/logger"
	"github.com/CMU-SAFARI/ramulator-sub000/memory"
	"github.com/CMU-SAFARI/ramulator-sub000/rowpolicy"
	"github.com/CMU-SAFARI/ramulator-sub000/scheduler"
)

// Resolve turns the string-keyed Config into the typed memory.Options
// memory.Build expects, wiring log and stdout against the caller's choice
// of destination rather than opening the logging surface's own files here.
func Resolve(cfg *Config, log *logger.Logger, stdout io.Writer, reg *prometheus.Registry) (memory.Options, error) {
	if err := Validate(cfg); err != nil {
		return memory.Options{}, err
	}

	opts := memory.Options{
		Standard:       cfg.Standard,
		Org:            cfg.Org,
		Speed:          cfg.Speed,
		Channels:       cfg.Channels,
		Ranks:          cfg.Ranks,
		SubArrays:      cfg.SubArrays,
		QueueDepth:     cfg.QueueDepth,
		Log:            log,
		Topics:         logger.NewTopics(cfg.Logging.Topics...),
		RecordCmdTrace: cfg.RecordCmdTrace,
		PrintCmdTrace:  cfg.PrintCmdTrace,
		CmdTracePrefix: cfg.CmdTracePrefix,
		Stdout:         stdout,
		Registry:       reg,
	}

	switch cfg.Mapping {
	case "ChRaBaRoCo":
		opts.Mapping = memory.ChRaBaRoCo
	default:
		opts.Mapping = memory.RoBaRaCoCh
	}

	switch cfg.Scheduler {
	case "FCFS":
		opts.Scheduler = scheduler.FCFS
	case "FRFCFS_Cap":
		opts.Scheduler = scheduler.FRFCFSCap
	case "FRFCFS_PriorHit":
		opts.Scheduler = scheduler.FRFCFSPriorHit
	default:
		opts.Scheduler = scheduler.FRFCFS
	}

	switch cfg.RowPolicy {
	case "ClosedAP":
		opts.RowPolicy = rowpolicy.ClosedAP
	case "Opened":
		opts.RowPolicy = rowpolicy.Opened
	case "Timeout":
		opts.RowPolicy = rowpolicy.Timeout
	default:
		opts.RowPolicy = rowpolicy.Closed
	}

	return opts, nil
}
