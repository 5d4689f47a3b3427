package main

import (
	"github.com/sagernet/sing-powerevent/eventlog"
)

// systemWriters opens the Windows Event Log for source when it is installed.
func systemWriters(source string) ([]eventlog.Writer, func()) {
	eventLog, err := eventlog.Open(source)
	if err != nil {
		logger.Debug(err)
		return nil, func() {}
	}
	return []eventlog.Writer{eventLog}, func() {
		eventLog.Close()
	}
}
