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

func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>",
		Short: "Print metadata about a btrfs filesystem",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := btrfsutil.GetFilesystemInfo(btrfsutil.PathTarget(args[0]))
	if err != nil {
		return err
	}
	fmt.Printf("FSID:        %s\n", info.FSID)
	fmt.Printf("Devices:     %d\n", info.NumDevices)
	fmt.Printf("Node size:   %d\n", info.NodeSize)
	fmt.Printf("Sector size: %d\n", info.SectorSize)
	fmt.Printf("Generation:  %d\n", info.Generation)
	return nil
}
