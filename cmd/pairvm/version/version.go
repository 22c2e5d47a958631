// Copyright (C) 2024, PairVM authors. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pairvm/pairvm/consts"
)

func init() {
	cobra.EnablePrefixMatching = true
}

// NewCommand implements "pairvm version" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints out the version",
		RunE:  versionFunc,
	}
}

func versionFunc(*cobra.Command, []string) error {
	fmt.Printf("%s@v%d.%d.%d (%s)\n", consts.Name, consts.Version.Major, consts.Version.Minor, consts.Version.Patch, runtime.Version())
	return nil
}
