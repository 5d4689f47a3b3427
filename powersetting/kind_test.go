package powersetting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindValues(t *testing.T) {
	t.Parallel()
	require.Equal(t, Kind(0x01), PowerSource)
	require.Equal(t, Kind(0x02), BatteryPercentage)
	require.Equal(t, Kind(0x04), LidswitchState)
	require.Equal(t, Kind(0x08), PowerSchemePersonality)
	require.Equal(t, Kind(0x10), DisplayState)
	require.Equal(t, Kind(0x1f), All)
	require.Equal(t, Kind(0), None)
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		input    string
		expected Kind
	}{
		{"", None},
		{"none", None},
		{"PowerSource", PowerSource},
		{"powersource, BATTERYPERCENTAGE", PowerSource | BatteryPercentage},
		{"DisplayState,,LidswitchState,", DisplayState | LidswitchState},
		{"all", All},
		{"PowerSchemePersonality,All", All},
	} {
		kind, err := ParseKind(testCase.input)
		require.NoError(t, err, testCase.input)
		require.Equal(t, testCase.expected, kind, testCase.input)
	}
	_, err := ParseKind("PowerSource,Brightness")
	require.ErrorContains(t, err, "Brightness")
}

func TestKindFlags(t *testing.T) {
	t.Parallel()
	require.Empty(t, None.Flags())
	require.Equal(t, []Kind{PowerSource, LidswitchState, DisplayState}, (DisplayState | PowerSource | LidswitchState).Flags())
	require.Len(t, All.Flags(), 5)
	require.Equal(t, []Kind{BatteryPercentage}, (BatteryPercentage | 0x40).Flags())
}

func TestKindString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "None", None.String())
	require.Equal(t, "PowerSource,DisplayState", (PowerSource | DisplayState).String())
	require.Equal(t, "LidswitchState,0x20", (LidswitchState | 0x20).String())
	require.Equal(t, KindNames(), []string{"PowerSource", "BatteryPercentage", "LidswitchState", "PowerSchemePersonality", "DisplayState"})
	for _, name := range KindNames() {
		kind, err := ParseKind(name)
		require.NoError(t, err)
		require.Equal(t, name, kind.String())
	}
}

func TestKindHas(t *testing.T) {
	t.Parallel()
	require.True(t, All.Has(DisplayState))
	require.True(t, All.Has(PowerSource|BatteryPercentage))
	require.False(t, PowerSource.Has(PowerSource|BatteryPercentage))
	require.False(t, All.Has(None))
}
