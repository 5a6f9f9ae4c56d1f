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

package commands

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/CMU-SAFARI/ramulator-sub000/config"
	"github.com/CMU-SAFARI/ramulator-sub000/dram"
	"github.com/CMU-SAFARI/ramulator-sub000/logger"
	"github.com/CMU-SAFARI/ramulator-sub000/memory"
	"github.com/CMU-SAFARI/ramulator-sub000/workload"
)

var (
	tracePath string
	maxCycles int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a memory access trace against a simulated channel set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		f, err := os.Open(tracePath)
		if err != nil {
			return err
		}
		defer f.Close()

		tr, err := workload.Load(f)
		if err != nil {
			return err
		}

		log := logger.NewLogger(4096)
		reg := prometheus.NewRegistry()

		opts, err := config.Resolve(cfg, log, cmd.OutOrStdout(), reg)
		if err != nil {
			return err
		}

		mem, err := memory.Build(opts)
		if err != nil {
			return err
		}

		driver := workload.NewDriver(tr, mem)
		env := dram.Environment{}

		var clk int64
		for ; maxCycles <= 0 || clk < maxCycles; clk++ {
			driver.Tick()
			mem.Tick(env)
			if driver.Finished(mem.PendingRequests()) {
				break
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "cycles=%d issued=%d retired=%d\n", clk, driver.Issued, driver.Retired)
		for _, c := range mem.Channels() {
			fmt.Fprintf(cmd.OutOrStdout(), "channel %d: queue_length=%d\n", c.ChannelID(), c.QueueLength())
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&tracePath, "trace", "t", "", "path to a memory access trace file")
	runCmd.Flags().Int64Var(&maxCycles, "max-cycles", 0, "stop after this many cycles (0 = run until the trace drains)")
	runCmd.MarkFlagRequired("trace")
}
