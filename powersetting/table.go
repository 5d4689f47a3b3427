package powersetting

// Power setting identifiers from winnt.h.
var (
	GUIDACDCPowerSource            = MustParseGUID("5d3e9a59-e9d5-4b00-a6bd-ff34ff516548")
	GUIDBatteryPercentageRemaining = MustParseGUID("a7ad8041-b45a-4cae-87a3-eecbb468a9e1")
	GUIDLidswitchStateChange       = MustParseGUID("ba3e0f4d-b817-4094-a2d1-d56379e6a0f3")
	GUIDPowerSchemePersonality     = MustParseGUID("245d8541-3943-4422-b025-13a784f679b7")
	GUIDMonitorPowerOn             = MustParseGUID("02731015-4510-4526-99e6-e5a17ebd1aea")
	GUIDConsoleDisplayState        = MustParseGUID("6fe69556-704a-47a0-8f24-c28d936fda47")

	// Personalities carried in the payload of a GUIDPowerSchemePersonality record.
	GUIDMaxPowerSavings     = MustParseGUID("8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c")
	GUIDMinPowerSavings     = MustParseGUID("a1841308-3541-4fab-bc81-f71556f20b4a")
	GUIDTypicalPowerSavings = MustParseGUID("381b4222-f694-41f0-9685-ff5bb260df2e")
)

var kindByIdentifier = map[GUID]Kind{
	GUIDACDCPowerSource:            PowerSource,
	GUIDBatteryPercentageRemaining: BatteryPercentage,
	GUIDLidswitchStateChange:       LidswitchState,
	GUIDPowerSchemePersonality:     PowerSchemePersonality,
	GUIDMonitorPowerOn:             DisplayState,
	GUIDConsoleDisplayState:        DisplayState,
}

var personalityByIdentifier = map[GUID]Personality{
	GUIDMinPowerSavings:     PowerSaver,
	GUIDTypicalPowerSavings: Automatic,
	GUIDMaxPowerSavings:     HighPerformance,
}

// OSVersion is the Windows NT version used to pick the display state
// identifier.
type OSVersion struct {
	Major uint32
	Minor uint32
}

var Windows8 = OSVersion{6, 2}

func (v OSVersion) AtLeast(other OSVersion) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// Identifier returns the identifier to register for a single kind. Display
// state uses GUID_CONSOLE_DISPLAY_STATE from Windows 8 on and
// GUID_MONITOR_POWER_ON before.
func Identifier(kind Kind, version OSVersion) (GUID, bool) {
	switch kind {
	case PowerSource:
		return GUIDACDCPowerSource, true
	case BatteryPercentage:
		return GUIDBatteryPercentageRemaining, true
	case LidswitchState:
		return GUIDLidswitchStateChange, true
	case PowerSchemePersonality:
		return GUIDPowerSchemePersonality, true
	case DisplayState:
		if version.AtLeast(Windows8) {
			return GUIDConsoleDisplayState, true
		}
		return GUIDMonitorPowerOn, true
	default:
		return GUID{}, false
	}
}

func KindOf(identifier GUID) (Kind, bool) {
	kind, loaded := kindByIdentifier[identifier]
	return kind, loaded
}
