package eventlog

import (
	E "github.com/sagernet/sing-powerevent/common/exceptions"

	"golang.org/x/sys/windows/svc/eventlog"
)

// Open opens the Windows Event Log for source. The source must have been
// installed.
func Open(source string) (*eventlog.Log, error) {
	eventLog, err := eventlog.Open(source)
	if err != nil {
		return nil, E.Cause(err, "open event log ", source)
	}
	return eventLog, nil
}

// Install registers source in the Application log with EventCreate.exe as
// the message file.
func Install(source string) error {
	err := eventlog.InstallAsEventCreate(source, eventlog.Info|eventlog.Warning|eventlog.Error)
	if err != nil {
		return E.Cause(err, "install event source ", source)
	}
	return nil
}

func Remove(source string) error {
	err := eventlog.Remove(source)
	if err != nil {
		return E.Cause(err, "remove event source ", source)
	}
	return nil
}
