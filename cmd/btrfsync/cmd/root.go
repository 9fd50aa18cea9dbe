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
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/subvol/btrfsutil/cmd/btrfsync/cmd/config"
)

var (
	v         = viper.New()
	envPrefix = "BTRFSYNC"
	cfgFile   string
	conf      = config.NewDefaultConfig()
	logger    = log.New(os.Stderr, "", log.LstdFlags)
)

func logLevel(level int, format string, args ...interface{}) {
	if conf.Verbosity >= level {
		logger.Printf(format, args...)
	}
}

func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func NewRootCommand(version string) *cobra.Command {
	var rootCommand = &cobra.Command{
		Use:               "btrfsync [flags] <command>",
		Short:             "A tool for forcing and waiting on btrfs transaction commits",
		SilenceErrors:     true,
		SilenceUsage:      true,
		Version:           version,
		PersistentPreRunE: initConfig,
	}

	rootCommand.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file")
	rootCommand.PersistentFlags().CountVarP(&conf.Verbosity, "verbose", "v", "verbosity level (can be used multiple times)")

	rootCommand.AddCommand(NewSyncCommand())
	rootCommand.AddCommand(NewStartCommand())
	rootCommand.AddCommand(NewWaitCommand())
	rootCommand.AddCommand(NewListCommand())
	rootCommand.AddCommand(NewInfoCommand())

	return rootCommand
}

func initConfig(cmd *cobra.Command, args []string) error {
	if err := v.BindPFlag("verbosity", cmd.Flags().Lookup("verbose")); err != nil {
		return err
	}

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		cfgdir, err := os.UserConfigDir()
		cobra.CheckErr(err)
		v.AddConfigPath(".")                               // Current directory
		v.AddConfigPath(filepath.Join(cfgdir, "btrfsync")) // User config directory
		v.AddConfigPath("/etc/btrfsync")                   // System config directory
		v.SetConfigType("toml")
		v.SetConfigName("btrfsync.toml")
	}

	if err := v.ReadInConfig(); err == nil {
		if err := v.Unmarshal(conf); err != nil {
			return err
		}
		logLevel(1, "Using config file: %s", v.ConfigFileUsed())
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, v.GetString(f.Name))
		}
	})

	return nil
}
