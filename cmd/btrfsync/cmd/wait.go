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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/subvol/btrfsutil/pkg/btrfsutil"
)

func NewWaitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wait [flags] <path> [transid]",
		Short: "Wait for a transaction to commit (the current one by default)",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runWait,
	}
}

func runWait(cmd *cobra.Command, args []string) error {
	var transid uint64
	if len(args) == 2 {
		var err error
		transid, err = strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid transaction id %q: %w", args[1], err)
		}
	}
	logLevel(1, "Waiting for transaction %d on %s", transid, args[0])
	return btrfsutil.WaitSyncFilesystem(args[0], transid)
}
