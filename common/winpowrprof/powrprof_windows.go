package winpowrprof

import (
	"golang.org/x/sys/windows"
)

const DEVICE_NOTIFY_CALLBACK = 2

// DeviceNotifySubscribeParameters is DEVICE_NOTIFY_SUBSCRIBE_PARAMETERS. It
// must stay at a fixed address while any registration refers to it.
type DeviceNotifySubscribeParameters struct {
	Callback uintptr
	Context  uintptr
}

// CallbackRoutine is the Go form of DEVICE_NOTIFY_CALLBACK_ROUTINE. Setting
// points to a POWERBROADCAST_SETTING when changeType is
// PBT_POWERSETTINGCHANGE.
type CallbackRoutine = func(context uintptr, changeType uint32, setting uintptr) uintptr

// NewSubscribeParameters wraps routine with windows.NewCallback. Callbacks
// are never released by the runtime, so routine should be created once.
func NewSubscribeParameters(routine CallbackRoutine, context uintptr) DeviceNotifySubscribeParameters {
	return DeviceNotifySubscribeParameters{
		Callback: windows.NewCallback(routine),
		Context:  context,
	}
}

// Available reports whether powrprof.dll exports the power setting
// notification functions.
func Available() error {
	if err := procPowerSettingRegisterNotification.Find(); err != nil {
		return err
	}
	return procPowerSettingUnregisterNotification.Find()
}
