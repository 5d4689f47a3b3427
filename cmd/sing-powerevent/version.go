package main

import (
	"fmt"
	"runtime"

	powerevent "github.com/sagernet/sing-powerevent"

	"github.com/spf13/cobra"
)

var commandVersion = &cobra.Command{
	Use:              "version",
	Short:            "Print current version of sing-powerevent",
	Args:             cobra.NoArgs,
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sing-powerevent version %s (%s %s/%s)\n", powerevent.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
