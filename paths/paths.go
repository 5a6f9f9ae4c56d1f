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

// Package paths resolves file system locations for resources the simulator
// writes outside of the in-memory core: command-trace files.
package paths

import (
	"os"
	"path/filepath"
)

// resourceDir is the subdirectory, relative to the user's home directory,
// under which ramulator resources are stored.
const resourceDir = ".ramulator"

// ResourcePath builds a path of the form ~/.ramulator/<subdir>/<file>,
// creating subdir (and resourceDir itself) if necessary. Either subdir or
// file may be empty.
func ResourcePath(subdir string, file string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, resourceDir, subdir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	if file == "" {
		return dir, nil
	}
	return filepath.Join(dir, file), nil
}
