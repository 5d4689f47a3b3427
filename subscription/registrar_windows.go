package subscription

import (
	"encoding/binary"

	"github.com/sagernet/sing-powerevent/channel"
	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/common/winpowrprof"
	"github.com/sagernet/sing-powerevent/common/winuser"
	"github.com/sagernet/sing-powerevent/powersetting"

	"golang.org/x/sys/windows"
)

var _ Registrar = (*SystemRegistrar)(nil)

// SystemRegistrar registers window and service receivers through user32 and
// callback receivers through powrprof.
type SystemRegistrar struct{}

func NewSystemRegistrar() *SystemRegistrar {
	return &SystemRegistrar{}
}

func (r *SystemRegistrar) Register(receiver channel.Receiver, identifier powersetting.GUID) (Handle, error) {
	guid := windowsGUID(identifier)
	switch receiver.Type {
	case channel.HandleWindow, channel.HandleService:
		handle, err := winuser.RegisterPowerSettingNotification(windows.Handle(receiver.Handle), &guid, recipientFlags(receiver.Type))
		if err != nil {
			return Handle{}, err
		}
		return Handle{handle, receiver.Type}, nil
	case channel.HandleCallback:
		var handle uintptr
		err := winpowrprof.PowerSettingRegisterNotification(&guid, winpowrprof.DEVICE_NOTIFY_CALLBACK, receiver.Handle, &handle)
		if err != nil {
			return Handle{}, err
		}
		return Handle{handle, receiver.Type}, nil
	default:
		return Handle{}, E.New("unknown receiver type: ", receiver.Type)
	}
}

func (r *SystemRegistrar) Unregister(handle Handle) error {
	switch handle.Type {
	case channel.HandleWindow, channel.HandleService:
		return winuser.UnregisterPowerSettingNotification(handle.Value)
	case channel.HandleCallback:
		return winpowrprof.PowerSettingUnregisterNotification(handle.Value)
	default:
		return E.New("unknown handle type: ", handle.Type)
	}
}

func recipientFlags(handleType channel.HandleType) uint32 {
	if handleType == channel.HandleService {
		return winuser.DEVICE_NOTIFY_SERVICE_HANDLE
	}
	return winuser.DEVICE_NOTIFY_WINDOW_HANDLE
}

func windowsGUID(identifier powersetting.GUID) windows.GUID {
	guid := windows.GUID{
		Data1: binary.LittleEndian.Uint32(identifier[0:4]),
		Data2: binary.LittleEndian.Uint16(identifier[4:6]),
		Data3: binary.LittleEndian.Uint16(identifier[6:8]),
	}
	copy(guid.Data4[:], identifier[8:])
	return guid
}
