//go:build windows

package winpowrprof

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

// https://learn.microsoft.com/en-us/windows/win32/api/powersetting/nf-powersetting-powersettingregisternotification
//sys PowerSettingRegisterNotification(settingGUID *windows.GUID, flags uint32, recipient uintptr, registrationHandle *uintptr) (ret error) = powrprof.PowerSettingRegisterNotification

// https://learn.microsoft.com/en-us/windows/win32/api/powersetting/nf-powersetting-powersettingunregisternotification
//sys PowerSettingUnregisterNotification(registrationHandle uintptr) (ret error) = powrprof.PowerSettingUnregisterNotification
