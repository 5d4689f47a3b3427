package main

import (
	"os"
	"path/filepath"

	"github.com/sagernet/sing-powerevent/common"
	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/eventlog"
	"github.com/sagernet/sing-powerevent/option"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"
)

func install() error {
	executable, err := os.Executable()
	if err != nil {
		return err
	}
	executable, err = filepath.Abs(executable)
	if err != nil {
		return err
	}
	if installFlags.WriteConfig {
		err = writeDefaultConfig()
		if err != nil {
			return err
		}
	}
	manager, err := mgr.Connect()
	if err != nil {
		return E.Cause(err, "connect service manager")
	}
	defer manager.Disconnect()
	service, err := manager.OpenService(options.ServiceName)
	if err == nil {
		service.Close()
		return E.New("service ", options.ServiceName, " already exists")
	}
	var arguments []string
	if globalFlags.ConfigPath != "" {
		configPath, err := filepath.Abs(globalFlags.ConfigPath)
		if err != nil {
			return err
		}
		arguments = append(arguments, "--config", configPath)
	}
	service, err = manager.CreateService(options.ServiceName, executable, mgr.Config{
		DisplayName: "Power Event Provider",
		Description: "Writes power setting changes to the event log.",
		StartType:   mgr.StartAutomatic,
	}, append([]string{"service"}, arguments...)...)
	if err != nil {
		return E.Cause(err, "create service")
	}
	defer service.Close()
	err = eventlog.Install(options.EventSource)
	if err != nil {
		service.Delete()
		return err
	}
	logger.Info("installed service ", options.ServiceName)
	return nil
}

func writeDefaultConfig() error {
	if globalFlags.ConfigPath != "" {
		return nil
	}
	paths := option.SearchPaths()
	if len(paths) < 2 {
		return nil
	}
	written, err := option.WriteDefault(paths[0])
	if err != nil {
		return err
	}
	if written {
		logger.Info("wrote default configuration to ", paths[0])
	}
	return nil
}

func uninstall() error {
	manager, err := mgr.Connect()
	if err != nil {
		return E.Cause(err, "connect service manager")
	}
	defer manager.Disconnect()
	service, err := manager.OpenService(options.ServiceName)
	if err != nil {
		return E.Cause(err, "open service ", options.ServiceName)
	}
	defer service.Close()
	status, err := service.Query()
	if err == nil && status.State != svc.Stopped {
		_, err = service.Control(svc.Stop)
		if err != nil {
			logger.Warn("stop service: ", err)
		}
	}
	return common.Close(closerFunc(service.Delete), closerFunc(func() error {
		return eventlog.Remove(options.EventSource)
	}))
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}
