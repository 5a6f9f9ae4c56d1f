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

// Package config loads the run configuration the core treats as an opaque
// map: which standard to simulate, its organization and speed,
// channel/rank counts, address mapping, scheduler and row-policy
// selection, and the command-trace flags. Layered through viper so a
// YAML file, environment variables (RAMULATOR_*) and defaults combine
// the way a run's flags are expected to.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/CMU-SAFARI/ramulator-sub000/curated"
)

// Config is the full set of keys the core needs to honor, plus the
// ambient logging knobs every run carries regardless of which standard
// it simulates.
type Config struct {
	Standard  string `mapstructure:"standard" yaml:"standard"`
	Org       string `mapstructure:"org" yaml:"org"`
	Speed     string `mapstructure:"speed" yaml:"speed"`
	Channels  int    `mapstructure:"channels" yaml:"channels"`
	Ranks     int    `mapstructure:"ranks" yaml:"ranks"`
	SubArrays int    `mapstructure:"subarrays" yaml:"subarrays,omitempty"` // SALP/DSARP only

	Mapping   string `mapstructure:"mapping" yaml:"mapping"`
	Scheduler string `mapstructure:"scheduler" yaml:"scheduler"`
	RowPolicy string `mapstructure:"row_policy" yaml:"row_policy"`

	QueueDepth int `mapstructure:"queue_depth" yaml:"queue_depth"`

	RecordCmdTrace bool   `mapstructure:"record_cmd_trace" yaml:"record_cmd_trace"`
	PrintCmdTrace  bool   `mapstructure:"print_cmd_trace" yaml:"print_cmd_trace"`
	CmdTracePrefix string `mapstructure:"cmd_trace_prefix" yaml:"cmd_trace_prefix,omitempty"`

	// HMC-only knobs; ignored by every other standard.
	NoDRAMLatency    bool `mapstructure:"no_dram_latency" yaml:"no_dram_latency,omitempty"`
	UnlimitBandwidth bool `mapstructure:"unlimit_bandwidth" yaml:"unlimit_bandwidth,omitempty"`

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig selects which of the logger package's topics are active
// and where its output goes.
type LoggingConfig struct {
	Topics []string `mapstructure:"topics" yaml:"topics"`
	Output string   `mapstructure:"output" yaml:"output"` // stdout, stderr, or a file path
}

// Defaults returns the configuration a bare `ramulator run` falls back to
// when no file and no flags override it: DDR3-1600K, one channel, one rank,
// FR-FCFS over the default Closed row policy.
func Defaults() *Config {
	return &Config{
		Standard:   "DDR3",
		Org:        "DDR3_2Gb_x8",
		Speed:      "DDR3_1600K",
		Channels:   1,
		Ranks:      1,
		Mapping:    "RoBaRaCoCh",
		Scheduler:  "FRFCFS",
		RowPolicy:  "Closed",
		QueueDepth: 64,
		Logging:    LoggingConfig{Topics: []string{"cmdtrace", "refresh"}, Output: "stderr"},
	}
}

// Load reads configPath (YAML) layered under environment variables
// (RAMULATOR_*, e.g. RAMULATOR_STANDARD=DDR4) layered under Defaults(). An
// empty configPath skips the file and returns env-over-defaults alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RAMULATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Defaults()
	applyDefaultsToViper(v, def)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, curated.Errorf("config: file not found: %s", configPath)
			}
			return nil, curated.Errorf("config: reading %s: %s", configPath, err.Error())
		}
	}

	cfg := *def
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, curated.Errorf("config: decoding: %s", err.Error())
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaultsToViper(v *viper.Viper, def *Config) {
	v.SetDefault("standard", def.Standard)
	v.SetDefault("org", def.Org)
	v.SetDefault("speed", def.Speed)
	v.SetDefault("channels", def.Channels)
	v.SetDefault("ranks", def.Ranks)
	v.SetDefault("subarrays", def.SubArrays)
	v.SetDefault("mapping", def.Mapping)
	v.SetDefault("scheduler", def.Scheduler)
	v.SetDefault("row_policy", def.RowPolicy)
	v.SetDefault("queue_depth", def.QueueDepth)
	v.SetDefault("record_cmd_trace", def.RecordCmdTrace)
	v.SetDefault("print_cmd_trace", def.PrintCmdTrace)
	v.SetDefault("cmd_trace_prefix", def.CmdTracePrefix)
	v.SetDefault("no_dram_latency", def.NoDRAMLatency)
	v.SetDefault("unlimit_bandwidth", def.UnlimitBandwidth)
	v.SetDefault("logging.topics", def.Logging.Topics)
	v.SetDefault("logging.output", def.Logging.Output)
}

var knownStandards = map[string]bool{
	"DDR3": true, "DDR4": true, "LPDDR3": true, "LPDDR4": true, "GDDR5": true,
	"WideIO": true, "WideIO2": true, "HBM": true, "HMC": true,
	"SALP-1": true, "SALP-2": true, "SALP-MASA": true, "DSARP": true,
	"ALDRAM": true, "TLDRAM": true, "PCM": true, "STTMRAM": true,
}

// Validate rejects configuration errors before a run starts, rather than
// let an unknown standard or a non-power-of-two count surface later as a
// panic.
func Validate(cfg *Config) error {
	if !knownStandards[cfg.Standard] {
		return curated.Errorf("config: unknown standard %q", cfg.Standard)
	}
	if cfg.Channels <= 0 || cfg.Channels&(cfg.Channels-1) != 0 {
		return curated.Errorf("config: channels must be a positive power of two, got %d", cfg.Channels)
	}
	if cfg.Ranks <= 0 || cfg.Ranks&(cfg.Ranks-1) != 0 {
		return curated.Errorf("config: ranks must be a positive power of two, got %d", cfg.Ranks)
	}
	switch cfg.Mapping {
	case "ChRaBaRoCo", "RoBaRaCoCh":
	default:
		return curated.Errorf("config: unknown mapping %q", cfg.Mapping)
	}
	switch cfg.Scheduler {
	case "FCFS", "FRFCFS", "FRFCFS_Cap", "FRFCFS_PriorHit":
	default:
		return curated.Errorf("config: unknown scheduler %q", cfg.Scheduler)
	}
	switch cfg.RowPolicy {
	case "Closed", "ClosedAP", "Opened", "Timeout":
	default:
		return curated.Errorf("config: unknown row policy %q", cfg.RowPolicy)
	}
	if cfg.QueueDepth <= 0 {
		return curated.Errorf("config: queue_depth must be positive, got %d", cfg.QueueDepth)
	}
	return nil
}

// Save writes cfg as YAML to path, creating its parent directory if
// necessary, so `ramulator validate --save` can round-trip a resolved
// configuration back to disk.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return curated.Errorf("config: creating %s: %s", dir, err.Error())
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return curated.Errorf("config: marshaling: %s", err.Error())
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return curated.Errorf("config: writing %s: %s", path, err.Error())
	}
	return nil
}

// String renders cfg for `ramulator validate`'s confirmation output.
func (c *Config) String() string {
	return fmt.Sprintf("%s %s/%s channels=%d ranks=%d mapping=%s scheduler=%s row_policy=%s",
		c.Standard, c.Org, c.Speed, c.Channels, c.Ranks, c.Mapping, c.Scheduler, c.RowPolicy)
}
