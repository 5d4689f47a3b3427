//go:build windows

package winuser

import (
	"golang.org/x/sys/windows"
)

const (
	WM_DESTROY        = 0x0002
	WM_CLOSE          = 0x0010
	WM_POWERBROADCAST = 0x0218

	PBT_POWERSETTINGCHANGE = 0x8013

	DEVICE_NOTIFY_WINDOW_HANDLE  = 0
	DEVICE_NOTIFY_SERVICE_HANDLE = 1
)

// HWND_MESSAGE is the parent of message-only windows.
const HWND_MESSAGE = ^windows.HWND(2)

type WndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type Point struct {
	X int32
	Y int32
}

type Msg struct {
	HWnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

// CurrentInstance returns the module handle of the running executable.
func CurrentInstance() (windows.Handle, error) {
	var instance windows.Handle
	err := windows.GetModuleHandleEx(0, nil, &instance)
	if err != nil {
		return 0, err
	}
	return instance, nil
}
