package channel

import (
	"sync"
	"sync/atomic"

	E "github.com/sagernet/sing-powerevent/common/exceptions"

	"golang.org/x/sys/windows"
)

var (
	serviceControlProc = windows.NewCallback(dispatchServiceControl)
	serviceNextID      atomic.Uintptr
	serviceChannels    sync.Map // uintptr -> *ServiceChannel
)

// dispatchServiceControl is the HandlerEx of every system service channel.
// The event data is only valid during this call, so the record is copied
// before it is forwarded.
func dispatchServiceControl(control uint32, eventType uint32, eventData uintptr, context uintptr) uintptr {
	value, loaded := serviceChannels.Load(context)
	if !loaded {
		return uintptr(NoError)
	}
	var data []byte
	if control == ControlPowerEvent && eventType == PowerSettingChange {
		data = settingBytes(eventData)
	}
	return uintptr(value.(*ServiceChannel).HandleControl(control, eventType, data))
}

// NewSystemServiceChannel registers the control handler of serviceName, which
// must be the service running in this process. It replaces any handler
// registered before, so lifecycle requests are only reported through
// OnLifecycle from then on.
func NewSystemServiceChannel(serviceName string) (*ServiceChannel, error) {
	name, err := windows.UTF16PtrFromString(serviceName)
	if err != nil {
		return nil, err
	}
	id := serviceNextID.Add(1)
	serviceChannel := &ServiceChannel{
		release: func() {
			serviceChannels.Delete(id)
		},
	}
	serviceChannels.Store(id, serviceChannel)
	statusHandle, err := windows.RegisterServiceCtrlHandlerEx(name, serviceControlProc, id)
	if err != nil {
		serviceChannels.Delete(id)
		return nil, E.Cause(err, "register service control handler")
	}
	serviceChannel.statusHandle = uintptr(statusHandle)
	return serviceChannel, nil
}
