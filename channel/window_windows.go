package channel

import (
	"runtime"
	"sync"
	"unsafe"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/common/winuser"

	"golang.org/x/sys/windows"
)

const windowClassName = "SingPowerEventReceiver"

var (
	windowClassOnce sync.Once
	windowClassErr  error
	windowProc      = windows.NewCallback(dispatchWindowMessage)
	windowChannels  sync.Map // windows.HWND -> *WindowChannel
)

func registerWindowClass() error {
	windowClassOnce.Do(func() {
		instance, err := winuser.CurrentInstance()
		if err != nil {
			windowClassErr = E.Cause(err, "get module handle")
			return
		}
		className, err := windows.UTF16PtrFromString(windowClassName)
		if err != nil {
			windowClassErr = err
			return
		}
		class := winuser.WndClassEx{
			WndProc:   windowProc,
			Instance:  instance,
			ClassName: className,
		}
		class.Size = uint32(unsafe.Sizeof(class))
		_, err = winuser.RegisterClassEx(&class)
		if err != nil {
			windowClassErr = E.Cause(err, "register window class")
		}
	})
	return windowClassErr
}

var _ Channel = (*WindowChannel)(nil)

// WindowChannel owns a hidden message-only window and the message loop
// feeding it. The loop runs on a dedicated, locked OS thread.
type WindowChannel struct {
	forwarder
	access   sync.Mutex
	hwnd     windows.HWND
	threadID uint32
	done     chan struct{}
}

func NewWindowChannel() *WindowChannel {
	return &WindowChannel{}
}

func (c *WindowChannel) Open() (Receiver, error) {
	c.access.Lock()
	defer c.access.Unlock()
	if c.closed.Load() {
		return Receiver{}, ErrClosed
	}
	if c.hwnd != 0 {
		return Receiver{uintptr(c.hwnd), HandleWindow}, nil
	}
	err := registerWindowClass()
	if err != nil {
		return Receiver{}, err
	}
	c.done = make(chan struct{})
	result := make(chan error, 1)
	go c.loop(result)
	err = <-result
	if err != nil {
		return Receiver{}, err
	}
	return Receiver{uintptr(c.hwnd), HandleWindow}, nil
}

func (c *WindowChannel) loop(result chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(c.done)
	instance, err := winuser.CurrentInstance()
	if err != nil {
		result <- E.Cause(err, "get module handle")
		return
	}
	className, _ := windows.UTF16PtrFromString(windowClassName)
	hwnd, err := winuser.CreateWindowEx(0, className, nil, 0, 0, 0, 0, 0, winuser.HWND_MESSAGE, 0, instance, 0)
	if err != nil {
		result <- E.Cause(err, "create message window")
		return
	}
	c.hwnd = hwnd
	c.threadID = windows.GetCurrentThreadId()
	windowChannels.Store(hwnd, c)
	defer windowChannels.Delete(hwnd)
	result <- nil
	var msg winuser.Msg
	for {
		ret, err := winuser.GetMessage(&msg, 0, 0, 0)
		if ret <= 0 || err != nil {
			return
		}
		winuser.TranslateMessage(&msg)
		winuser.DispatchMessage(&msg)
	}
}

func dispatchWindowMessage(hwnd windows.HWND, message uint32, wParam uintptr, lParam uintptr) uintptr {
	switch message {
	case winuser.WM_POWERBROADCAST:
		if wParam == winuser.PBT_POWERSETTINGCHANGE {
			if value, loaded := windowChannels.Load(hwnd); loaded {
				value.(*WindowChannel).forward(Raw{uint32(wParam), settingBytes(lParam)})
			}
		}
	case winuser.WM_CLOSE:
		winuser.DestroyWindow(hwnd)
		return 0
	case winuser.WM_DESTROY:
		winuser.PostQuitMessage(0)
		return 0
	}
	return winuser.DefWindowProc(hwnd, message, wParam, lParam)
}

// Close destroys the window and waits for the message loop to exit. Called
// from the loop thread itself, it destroys the window directly and returns
// without waiting.
func (c *WindowChannel) Close() error {
	c.access.Lock()
	if c.closed.Swap(true) || c.hwnd == 0 {
		c.access.Unlock()
		return nil
	}
	hwnd, threadID, done := c.hwnd, c.threadID, c.done
	c.access.Unlock()
	if windows.GetCurrentThreadId() == threadID {
		return winuser.DestroyWindow(hwnd)
	}
	err := winuser.PostMessage(hwnd, winuser.WM_CLOSE, 0, 0)
	if err != nil {
		return E.Cause(err, "post close message")
	}
	<-done
	return nil
}
