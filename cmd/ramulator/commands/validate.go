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
	"github.com/spf13/cobra"

	"github.com/CMU-SAFARI/ramulator-sub000/config"
)

var saveTo string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate a configuration without running a simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cmd.Println(cfg.String())
		if saveTo != "" {
			if err := config.Save(cfg, saveTo); err != nil {
				return err
			}
			cmd.Println("wrote", saveTo)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&saveTo, "save", "", "write the resolved configuration back out as YAML")
}
