package main

import (
	"fmt"
	"strings"

	"github.com/sagernet/sing-powerevent/common"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/spf13/cobra"
)

var commandKinds = &cobra.Command{
	Use:              "kinds",
	Short:            "List notification kinds",
	Args:             cobra.NoArgs,
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(kindLines(), "\n"))
	},
}

func kindLines() []string {
	return common.Map(powersetting.All.Flags(), func(it powersetting.Kind) string {
		return fmt.Sprintf("%-24s0x%02x", it, uint32(it))
	})
}
