package powersetting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGUIDLayout(t *testing.T) {
	t.Parallel()
	require.Equal(t, GUID{
		0x59, 0x9a, 0x3e, 0x5d,
		0xd5, 0xe9,
		0x00, 0x4b,
		0xa6, 0xbd, 0xff, 0x34, 0xff, 0x51, 0x65, 0x48,
	}, GUIDACDCPowerSource)
	require.Equal(t, "5d3e9a59-e9d5-4b00-a6bd-ff34ff516548", GUIDACDCPowerSource.String())
}

func TestParseGUID(t *testing.T) {
	t.Parallel()
	guid, err := ParseGUID("{245D8541-3943-4422-B025-13A784F679B7}")
	require.NoError(t, err)
	require.Equal(t, GUIDPowerSchemePersonality, guid)
	_, err = ParseGUID("not-a-guid")
	require.Error(t, err)
	require.Panics(t, func() { MustParseGUID("") })
}
