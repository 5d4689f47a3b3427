package powersetting

import "strconv"

// PowerCondition is the SYSTEM_POWER_CONDITION reported for the power source.
// Values outside the known set are passed through.
type PowerCondition uint32

const (
	PoAc  PowerCondition = 0
	PoDc  PowerCondition = 1
	PoHot PowerCondition = 2
)

func (c PowerCondition) String() string {
	switch c {
	case PoAc:
		return "PoAc"
	case PoDc:
		return "PoDc"
	case PoHot:
		return "PoHot"
	default:
		return "PowerCondition(" + strconv.FormatUint(uint64(c), 10) + ")"
	}
}

type Personality uint32

const (
	PowerSaver      Personality = 0
	Automatic       Personality = 1
	HighPerformance Personality = 2
)

func (p Personality) String() string {
	switch p {
	case PowerSaver:
		return "PowerSaver"
	case Automatic:
		return "Automatic"
	case HighPerformance:
		return "HighPerformance"
	default:
		return "Personality(" + strconv.FormatUint(uint64(p), 10) + ")"
	}
}

type Display uint32

const (
	DisplayOff    Display = 0
	DisplayOn     Display = 1
	DisplayDimmed Display = 2
)

func (d Display) String() string {
	switch d {
	case DisplayOff:
		return "Off"
	case DisplayOn:
		return "On"
	case DisplayDimmed:
		return "Dimmed"
	default:
		return "Display(" + strconv.FormatUint(uint64(d), 10) + ")"
	}
}
