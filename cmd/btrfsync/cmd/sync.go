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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/subvol/btrfsutil/pkg/btrfsutil"
)

func NewSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [flags] [path...]",
		Short: "Force a commit of the current transaction and wait for it",
		RunE:  runSync,
	}
	cmd.Flags().BoolVarP(&conf.AllFilesystems, "all", "a", false, "sync every mounted btrfs filesystem")
	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	if conf.AllFilesystems {
		fss, err := btrfsutil.ListFilesystems()
		if err != nil {
			return err
		}
		for _, fs := range fss {
			logLevel(1, "Syncing %s (%s)", fs.Path, fs.Device)
			if err := fs.Sync(); err != nil {
				return err
			}
		}
		return nil
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	for _, path := range args {
		mount, err := btrfsutil.FindRootMount(path)
		if err != nil {
			return err
		}
		logLevel(1, "Syncing %s", mount)
		if err := btrfsutil.SyncFilesystem(mount); err != nil {
			return err
		}
	}
	return nil
}
