package powersetting

import (
	"strconv"
	"strings"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
)

// Kind is a set of power setting notifications. The bit values are stable.
type Kind uint32

const (
	PowerSource            Kind = 0x01
	BatteryPercentage      Kind = 0x02
	LidswitchState         Kind = 0x04
	PowerSchemePersonality Kind = 0x08
	DisplayState           Kind = 0x10

	None Kind = 0
	All       = PowerSource | BatteryPercentage | LidswitchState | PowerSchemePersonality | DisplayState
)

var kindNames = []struct {
	kind Kind
	name string
}{
	{PowerSource, "PowerSource"},
	{BatteryPercentage, "BatteryPercentage"},
	{LidswitchState, "LidswitchState"},
	{PowerSchemePersonality, "PowerSchemePersonality"},
	{DisplayState, "DisplayState"},
}

// KindNames returns the names of the single notification kinds in bit order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, it := range kindNames {
		names = append(names, it.name)
	}
	return names
}

// ParseKind parses a comma separated, case-insensitive list of kind names.
// "All" and "None" are accepted, blank entries are skipped.
func ParseKind(s string) (Kind, error) {
	var kind Kind
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.EqualFold(part, "All"):
			kind |= All
			continue
		case strings.EqualFold(part, "None"):
			continue
		}
		var found bool
		for _, it := range kindNames {
			if strings.EqualFold(part, it.name) {
				kind |= it.kind
				found = true
				break
			}
		}
		if !found {
			return None, E.New("unknown notification: ", part)
		}
	}
	return kind, nil
}

func (k Kind) Has(other Kind) bool {
	return other != None && k&other == other
}

// Flags splits k into its single known kinds in ascending bit order.
func (k Kind) Flags() []Kind {
	var flags []Kind
	for _, it := range kindNames {
		if k&it.kind != 0 {
			flags = append(flags, it.kind)
		}
	}
	return flags
}

func (k Kind) String() string {
	if k == None {
		return "None"
	}
	var names []string
	for _, it := range kindNames {
		if k&it.kind != 0 {
			names = append(names, it.name)
		}
	}
	if unknown := k &^ All; unknown != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(unknown), 16))
	}
	return strings.Join(names, ",")
}
