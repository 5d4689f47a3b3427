package main

import (
	"strings"

	powerevent "github.com/sagernet/sing-powerevent"
	"github.com/sagernet/sing-powerevent/common"
	"github.com/sagernet/sing-powerevent/common/log"
	"github.com/sagernet/sing-powerevent/option"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type flags struct {
	ConfigPath string
	LogLevel   string
	Callback   bool
}

var (
	globalFlags flags
	logger      = log.NewLogger("sing-powerevent")
)

var mainCommand = &cobra.Command{
	Use:               "sing-powerevent [kinds]",
	Short:             "Report Windows power setting changes",
	Long:              mainDescription(),
	Version:           powerevent.Version,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: preRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		notifications, valid := parseArgs(args)
		if !valid {
			return cmd.Help()
		}
		return run(cmd.Context(), notifications)
	},
	SilenceUsage: true,
}

func mainDescription() string {
	return "Report Windows power setting changes.\n\n" +
		"kinds is a comma separated, case-insensitive list of\n" +
		strings.Join(powersetting.KindNames(), ", ") + ", All or None."
}

func init() {
	mainCommand.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "set configuration file path")
	mainCommand.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "", "override the configured log level")
	mainCommand.Flags().BoolVar(&globalFlags.Callback, "callback", false, "receive notifications through a powrprof callback instead of a window")
	mainCommand.AddCommand(commandService, commandInstall, commandUninstall, commandKinds, commandVersion)
}

func main() {
	err := mainCommand.Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}

var options *option.Options

func preRun(cmd *cobra.Command, args []string) error {
	var err error
	options, err = option.Load(globalFlags.ConfigPath)
	if err != nil {
		return err
	}
	level := options.LogLevel
	if globalFlags.LogLevel != "" {
		level = globalFlags.LogLevel
	}
	return log.SetLevel(level)
}

// configFile returns the file to watch for changes, if any.
func configFile() string {
	if globalFlags.ConfigPath != "" {
		return globalFlags.ConfigPath
	}
	paths := common.Filter(option.SearchPaths(), common.FileExists)
	if len(paths) == 0 {
		return ""
	}
	return paths[len(paths)-1]
}
