package channel

import (
	"encoding/binary"
	"unsafe"

	"github.com/sagernet/sing-powerevent/powersetting"
)

const maxSettingData = 4096

// settingBytes copies the POWERBROADCAST_SETTING at pointer. The record is
// only valid while the OS call delivering it is in progress.
func settingBytes(pointer uintptr) []byte {
	if pointer == 0 {
		return nil
	}
	header := unsafe.Slice((*byte)(unsafe.Pointer(pointer)), powersetting.HeaderSize)
	length := binary.LittleEndian.Uint32(header[16:])
	if length > maxSettingData {
		return append([]byte(nil), header...)
	}
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(pointer)), powersetting.HeaderSize+int(length))...)
}
