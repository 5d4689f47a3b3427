//go:build !windows

package main

import (
	"github.com/sagernet/sing-powerevent/channel"
	"github.com/sagernet/sing-powerevent/eventlog"
)

func systemWriters(source string) ([]eventlog.Writer, func()) {
	return nil, func() {}
}

func runService(debug bool) error {
	return channel.ErrUnsupported
}

func install() error {
	return channel.ErrUnsupported
}

func uninstall() error {
	return channel.ErrUnsupported
}
