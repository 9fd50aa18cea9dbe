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
	"strings"

	"github.com/spf13/cobra"

	"github.com/subvol/btrfsutil/pkg/btrfsutil"
)

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List mounted btrfs filesystems",
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	fss, err := btrfsutil.ListFilesystems()
	if err != nil {
		return err
	}
	for _, fs := range fss {
		fmt.Printf("%s\t%s\t%s\n", fs.Path, fs.Device, strings.Join(fs.MountOptions, ","))
	}
	return nil
}
