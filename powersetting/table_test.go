package powersetting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	t.Parallel()
	for kind, expected := range map[Kind]GUID{
		PowerSource:            GUIDACDCPowerSource,
		BatteryPercentage:      GUIDBatteryPercentageRemaining,
		LidswitchState:         GUIDLidswitchStateChange,
		PowerSchemePersonality: GUIDPowerSchemePersonality,
	} {
		identifier, ok := Identifier(kind, OSVersion{})
		require.True(t, ok)
		require.Equal(t, expected, identifier)
		resolved, ok := KindOf(identifier)
		require.True(t, ok)
		require.Equal(t, kind, resolved)
	}
	_, ok := Identifier(All, Windows8)
	require.False(t, ok)
	_, ok = Identifier(None, Windows8)
	require.False(t, ok)
}

func TestDisplayStateIdentifier(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		version  OSVersion
		expected GUID
	}{
		{OSVersion{5, 1}, GUIDMonitorPowerOn},
		{OSVersion{6, 1}, GUIDMonitorPowerOn},
		{OSVersion{6, 2}, GUIDConsoleDisplayState},
		{OSVersion{6, 3}, GUIDConsoleDisplayState},
		{OSVersion{10, 0}, GUIDConsoleDisplayState},
	} {
		identifier, ok := Identifier(DisplayState, testCase.version)
		require.True(t, ok)
		require.Equal(t, testCase.expected, identifier, "%d.%d", testCase.version.Major, testCase.version.Minor)
		kind, ok := KindOf(identifier)
		require.True(t, ok)
		require.Equal(t, DisplayState, kind)
	}
}

func TestKindOfUnknown(t *testing.T) {
	t.Parallel()
	for _, identifier := range []GUID{{}, GUIDMaxPowerSavings, GUIDMinPowerSavings, GUIDTypicalPowerSavings} {
		_, ok := KindOf(identifier)
		require.False(t, ok)
	}
}
