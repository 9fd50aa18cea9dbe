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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subvol/btrfsutil/pkg/btrfsutil"
)

func NewStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start [flags] <path>",
		Short: "Start a commit of the current transaction and print its id",
		Args:  cobra.ExactArgs(1),
		RunE:  runStart,
	}
	cmd.Flags().BoolVarP(&conf.Wait, "wait", "w", false, "block until the started transaction has committed")
	return cmd
}

func runStart(cmd *cobra.Command, args []string) error {
	transid, err := btrfsutil.StartSyncFilesystem(args[0])
	if err != nil {
		return err
	}
	fmt.Println(transid)
	if conf.Wait {
		logLevel(1, "Waiting for transaction %d", transid)
		return btrfsutil.WaitSyncFilesystem(args[0], transid)
	}
	return nil
}
