package main

import (
	"context"

	powerevent "github.com/sagernet/sing-powerevent"
	"github.com/sagernet/sing-powerevent/channel"
	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/eventlog"
	"github.com/sagernet/sing-powerevent/option"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/debug"
)

const serviceAccepts = svc.AcceptStop | svc.AcceptShutdown | svc.AcceptPauseAndContinue | svc.AcceptPowerEvent

func runService(debugMode bool) error {
	if debugMode {
		return debug.Run(options.ServiceName, &serviceHandler{debug: true})
	}
	isService, err := svc.IsWindowsService()
	if err != nil {
		return E.Cause(err, "detect service environment")
	}
	if !isService {
		return E.New("not started by the service control manager, use --debug to run in the console")
	}
	return svc.Run(options.ServiceName, &serviceHandler{})
}

type serviceHandler struct {
	debug bool
}

func (h *serviceHandler) Execute(args []string, requests <-chan svc.ChangeRequest, status chan<- svc.Status) (bool, uint32) {
	status <- svc.Status{State: svc.StartPending}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		dispatcher     *powerevent.Dispatcher
		serviceChannel *channel.ServiceChannel
		err            error
	)
	if h.debug {
		dispatcher, err = powerevent.NewWindowDispatcher(ctx, options.Notifications(), nil)
	} else {
		dispatcher, serviceChannel, err = powerevent.NewServiceDispatcher(ctx, options.ServiceName, options.Notifications(), nil)
	}
	if dispatcher == nil {
		logger.Error("start dispatcher: ", err)
		return true, 1
	}
	defer dispatcher.Close()
	if err != nil {
		logger.Warn("some notifications are unavailable: ", err)
	}

	// The service channel owns the control handler, so lifecycle requests
	// arrive as signals instead of change requests.
	signals := make(chan channel.Signal, 4)
	if serviceChannel != nil {
		defer serviceChannel.OnLifecycle(func(signal channel.Signal) {
			select {
			case signals <- signal:
			case <-dispatcher.Done():
			}
		})()
	}

	state := newServiceState(dispatcher, options)
	writers, closeWriters := h.writers()
	defer closeWriters()
	defer eventlog.Attach(dispatcher, append(writers, eventlog.NewLogWriter(nil))...)()
	defer attachPause(ctx, dispatcher)()
	defer watchConfig(func(reloaded *option.Options) {
		applyLogLevel(reloaded)
		state.reload(reloaded)
	})()

	status <- svc.Status{State: svc.Running, Accepts: serviceAccepts}
	logger.Info("service started, monitoring ", dispatcher.Active())
	for {
		select {
		case request := <-requests:
			switch request.Cmd {
			case svc.Interrogate:
				status <- request.CurrentStatus
			case svc.Pause:
				h.handleSignal(channel.SignalPause, state, status)
			case svc.Continue:
				h.handleSignal(channel.SignalContinue, state, status)
			case svc.Stop:
				h.handleSignal(channel.SignalStop, state, status)
			case svc.Shutdown:
				h.handleSignal(channel.SignalShutdown, state, status)
			}
		case signal := <-signals:
			h.handleSignal(signal, state, status)
		case <-dispatcher.Done():
			logger.Info("service stopped")
			return false, 0
		}
	}
}

func (h *serviceHandler) handleSignal(signal channel.Signal, state *serviceState, status chan<- svc.Status) {
	switch signal {
	case channel.SignalPause:
		state.pause()
		status <- svc.Status{State: svc.Paused, Accepts: serviceAccepts}
	case channel.SignalContinue:
		state.resume()
		status <- svc.Status{State: svc.Running, Accepts: serviceAccepts}
	case channel.SignalStop, channel.SignalShutdown:
		status <- svc.Status{State: svc.StopPending}
		state.dispatcher.Close()
	}
}

func (h *serviceHandler) writers() ([]eventlog.Writer, func()) {
	if h.debug {
		consoleLog := debug.New(options.EventSource)
		return []eventlog.Writer{consoleLog}, func() {
			consoleLog.Close()
		}
	}
	return systemWriters(options.EventSource)
}
