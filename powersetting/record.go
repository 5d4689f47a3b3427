package powersetting

import "encoding/binary"

// Layout of POWERBROADCAST_SETTING as delivered with PBT_POWERSETTINGCHANGE.
const (
	HeaderSize  = 20
	PayloadSize = 16
	RecordSize  = HeaderSize + PayloadSize

	identifierOffset = 0
	lengthOffset     = 16
)

// Record is a view over a POWERBROADCAST_SETTING. It does not copy the
// underlying buffer.
type Record struct {
	Identifier GUID
	Data       []byte
}

// ParseRecord reads the header and slices the payload. It fails when the
// buffer is shorter than the header or than the length it announces.
func ParseRecord(b []byte) (Record, bool) {
	if len(b) < HeaderSize {
		return Record{}, false
	}
	length := binary.LittleEndian.Uint32(b[lengthOffset:])
	if uint64(length) > uint64(len(b)-HeaderSize) {
		return Record{}, false
	}
	var record Record
	copy(record.Identifier[:], b[identifierOffset:lengthOffset])
	record.Data = b[HeaderSize : HeaderSize+int(length)]
	return record, true
}

// IsGUID reports whether the payload holds a GUID rather than a DWORD.
func (r Record) IsGUID() bool {
	return len(r.Data) == len(GUID{})
}

// Uint32 returns the little endian DWORD at the start of the payload. Shorter
// payloads are zero extended.
func (r Record) Uint32() uint32 {
	var value [4]byte
	copy(value[:], r.Data)
	return binary.LittleEndian.Uint32(value[:])
}

func (r Record) GUID() GUID {
	var guid GUID
	copy(guid[:], r.Data)
	return guid
}

// EncodeRecord builds a RecordSize buffer holding identifier and payload. The
// payload is truncated to PayloadSize bytes.
func EncodeRecord(identifier GUID, payload []byte) []byte {
	if len(payload) > PayloadSize {
		payload = payload[:PayloadSize]
	}
	b := make([]byte, RecordSize)
	copy(b[identifierOffset:], identifier[:])
	binary.LittleEndian.PutUint32(b[lengthOffset:], uint32(len(payload)))
	copy(b[HeaderSize:], payload)
	return b
}

func EncodeUint32Record(identifier GUID, value uint32) []byte {
	var payload [4]byte
	binary.LittleEndian.PutUint32(payload[:], value)
	return EncodeRecord(identifier, payload[:])
}

func EncodeGUIDRecord(identifier GUID, value GUID) []byte {
	return EncodeRecord(identifier, value[:])
}
