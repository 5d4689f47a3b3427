package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	powerevent "github.com/sagernet/sing-powerevent"
	"github.com/sagernet/sing-powerevent/common/log"
	"github.com/sagernet/sing-powerevent/eventlog"
	"github.com/sagernet/sing-powerevent/option"
	"github.com/sagernet/sing-powerevent/pause"
	"github.com/sagernet/sing-powerevent/powersetting"
)

// parseArgs joins the positional arguments into a kind list. Nothing to
// monitor is reported as invalid.
func parseArgs(args []string) (powersetting.Kind, bool) {
	if len(args) == 0 {
		return powersetting.None, false
	}
	notifications, err := powersetting.ParseKind(strings.Join(args, ","))
	if err != nil {
		logger.Error(err)
		return powersetting.None, false
	}
	return notifications, notifications != powersetting.None
}

func run(ctx context.Context, notifications powersetting.Kind) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()
	var (
		dispatcher *powerevent.Dispatcher
		err        error
	)
	if globalFlags.Callback {
		dispatcher, err = powerevent.NewCallbackDispatcher(ctx, notifications, nil)
	} else {
		dispatcher, err = powerevent.NewWindowDispatcher(ctx, notifications, nil)
	}
	if dispatcher == nil {
		return err
	}
	defer dispatcher.Close()
	if err != nil {
		logger.Warn("some notifications are unavailable: ", err)
	}
	writers, closeWriters := systemWriters(options.EventSource)
	defer closeWriters()
	defer eventlog.Attach(dispatcher, append(writers, eventlog.NewLogWriter(nil))...)()
	defer attachPause(ctx, dispatcher)()
	defer watchConfig(func(reloaded *option.Options) {
		applyLogLevel(reloaded)
	})()
	logger.Info("monitoring ", dispatcher.Active())
	<-dispatcher.Done()
	return nil
}

// attachPause reports when the device goes idle or wakes up.
func attachPause(ctx context.Context, dispatcher *powerevent.Dispatcher) (detach func()) {
	manager := pause.NewDefaultManager(ctx)
	unregister := manager.RegisterCallback(func(event pause.Event) {
		logger.Info(event)
	})
	detachPower := pause.Attach(dispatcher, manager)
	return func() {
		detachPower()
		unregister()
	}
}

func applyLogLevel(reloaded *option.Options) {
	if globalFlags.LogLevel != "" {
		return
	}
	err := log.SetLevel(reloaded.LogLevel)
	if err != nil {
		logger.Warn(err)
	}
}

// applyNotifications moves the dispatcher to the kinds enabled in reloaded.
func applyNotifications(dispatcher *powerevent.Dispatcher, reloaded *option.Options) {
	current := dispatcher.Active()
	wanted := reloaded.Notifications()
	if removed := current &^ wanted; removed != powersetting.None {
		logger.Info("unregister ", removed)
		dispatcher.Unregister(removed)
	}
	if added := wanted &^ current; added != powersetting.None {
		logger.Info("register ", added)
		err := dispatcher.Register(added)
		if err != nil {
			logger.Warn(err)
		}
	}
}

// watchConfig reloads the active configuration file on change. The result
// stops watching.
func watchConfig(onChange func(*option.Options)) (stop func()) {
	path := configFile()
	if path == "" {
		return func() {}
	}
	stopWatch, err := option.Watch(path, onChange)
	if err != nil {
		logger.Warn("watch config: ", err)
		return func() {}
	}
	return func() {
		stopWatch()
	}
}
