/*
This file is part of btrfsutil.

Btrfsutil is free software: you can redistribute it and/or modify it under the terms of the
GNU Lesser General Public License as published by the Free Software Foundation, either
version 3 of the License, or (at your option) any later version.

Btrfsutil is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
See the GNU Lesser General Public License for more details.

You should have received a copy of the GNU Lesser General Public License along with btrfsutil.
If not, see <https://www.gnu.org/licenses/>.
*/

package config

// Config is the root configuration object.
type Config struct {
	// Verbosity is the verbosity level.
	Verbosity int `mapstructure:"verbosity" toml:"verbosity,omitempty"`
	// AllFilesystems makes sync operate on every mounted btrfs filesystem
	// when no path is given.
	AllFilesystems bool `mapstructure:"all_filesystems" toml:"all_filesystems,omitempty"`
	// Wait makes start block until the started transaction has committed.
	Wait bool `mapstructure:"wait" toml:"wait,omitempty"`
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{}
}
