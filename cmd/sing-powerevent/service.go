package main

import (
	"sync"

	powerevent "github.com/sagernet/sing-powerevent"
	"github.com/sagernet/sing-powerevent/option"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/spf13/cobra"
)

var serviceFlags struct {
	Debug bool
}

var commandService = &cobra.Command{
	Use:   "service",
	Short: "Run as a Windows service",
	Long:  "Run as a Windows service. The service control manager starts this command; use install to register it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runService(serviceFlags.Debug)
	},
}

var installFlags struct {
	WriteConfig bool
}

var commandInstall = &cobra.Command{
	Use:   "install",
	Short: "Install the Windows service and event source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return install()
	},
}

var commandUninstall = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the Windows service and event source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return uninstall()
	},
}

func init() {
	commandService.Flags().BoolVar(&serviceFlags.Debug, "debug", false, "run the service handler in the console")
	commandInstall.Flags().BoolVar(&installFlags.WriteConfig, "write-config", true, "write the default configuration if missing")
}

// serviceState tracks the configuration a paused service resumes with.
// Reloads while paused are stored and applied on continue.
type serviceState struct {
	access     sync.Mutex
	dispatcher *powerevent.Dispatcher
	latest     *option.Options
	paused     bool
}

func newServiceState(dispatcher *powerevent.Dispatcher, current *option.Options) *serviceState {
	return &serviceState{dispatcher: dispatcher, latest: current}
}

func (s *serviceState) pause() {
	s.access.Lock()
	defer s.access.Unlock()
	s.paused = true
	if active := s.dispatcher.Active(); active != powersetting.None {
		logger.Info("pause, unregister ", active)
		s.dispatcher.Unregister(active)
	}
}

func (s *serviceState) resume() {
	s.access.Lock()
	defer s.access.Unlock()
	s.paused = false
	applyNotifications(s.dispatcher, s.latest)
}

func (s *serviceState) reload(reloaded *option.Options) {
	s.access.Lock()
	defer s.access.Unlock()
	s.latest = reloaded
	if s.paused {
		return
	}
	applyNotifications(s.dispatcher, reloaded)
}
