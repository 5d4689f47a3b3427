package powersetting

import (
	"github.com/google/uuid"
)

// GUID is a Windows GUID in memory layout: Data1, Data2 and Data3 are stored
// little endian, Data4 as is.
type GUID [16]byte

func ParseGUID(s string) (GUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, err
	}
	return GUID(swapEndian(id)), nil
}

func MustParseGUID(s string) GUID {
	guid, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return guid
}

// String returns the canonical lowercase representation.
func (g GUID) String() string {
	return uuid.UUID(swapEndian(g)).String()
}

// swapEndian converts between the RFC 4122 byte order and the Windows
// memory layout. The conversion is its own inverse.
func swapEndian(b [16]byte) [16]byte {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
	return b
}
