//go:build windows

package winuser

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-registerclassexw
//sys RegisterClassEx(wndClass *WndClassEx) (atom uint16, err error) = user32.RegisterClassExW

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-createwindowexw
//sys CreateWindowEx(exStyle uint32, className *uint16, windowName *uint16, style uint32, x int32, y int32, width int32, height int32, parent windows.HWND, menu windows.Handle, instance windows.Handle, param uintptr) (hwnd windows.HWND, err error) = user32.CreateWindowExW

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-destroywindow
//sys DestroyWindow(hwnd windows.HWND) (err error) = user32.DestroyWindow

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-defwindowprocw
//sys DefWindowProc(hwnd windows.HWND, message uint32, wParam uintptr, lParam uintptr) (result uintptr) = user32.DefWindowProcW

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-getmessagew
//sys GetMessage(msg *Msg, hwnd windows.HWND, msgFilterMin uint32, msgFilterMax uint32) (ret int32, err error) [failretval==-1] = user32.GetMessageW

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-translatemessage
//sys TranslateMessage(msg *Msg) (translated bool) = user32.TranslateMessage

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-dispatchmessagew
//sys DispatchMessage(msg *Msg) (result uintptr) = user32.DispatchMessageW

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-postmessagew
//sys PostMessage(hwnd windows.HWND, message uint32, wParam uintptr, lParam uintptr) (err error) = user32.PostMessageW

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-postquitmessage
//sys PostQuitMessage(exitCode int32) = user32.PostQuitMessage

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-registerpowersettingnotification
//sys RegisterPowerSettingNotification(recipient windows.Handle, powerSettingGUID *windows.GUID, flags uint32) (handle uintptr, err error) = user32.RegisterPowerSettingNotification

// https://learn.microsoft.com/en-us/windows/win32/api/winuser/nf-winuser-unregisterpowersettingnotification
//sys UnregisterPowerSettingNotification(handle uintptr) (err error) = user32.UnregisterPowerSettingNotification
