package powersetting

// Notification is a decoded power setting change. The concrete type is one of
// PowerSourceChanged, BatteryPercentageChanged, LidswitchStateChanged,
// PowerSchemePersonalityChanged or DisplayStateChanged.
type Notification interface {
	Kind() Kind
	notification()
}

type PowerSourceChanged struct {
	Condition PowerCondition
}

type BatteryPercentageChanged struct {
	// Percentage is passed through unclamped.
	Percentage int
}

type LidswitchStateChanged struct {
	Open bool
}

type PowerSchemePersonalityChanged struct {
	Personality Personality
	// Known is false when the payload named none of the three personalities.
	// Personality is then PowerSaver.
	Known bool
}

type DisplayStateChanged struct {
	State Display
}

func (PowerSourceChanged) Kind() Kind            { return PowerSource }
func (BatteryPercentageChanged) Kind() Kind      { return BatteryPercentage }
func (LidswitchStateChanged) Kind() Kind         { return LidswitchState }
func (PowerSchemePersonalityChanged) Kind() Kind { return PowerSchemePersonality }
func (DisplayStateChanged) Kind() Kind           { return DisplayState }

func (PowerSourceChanged) notification()            {}
func (BatteryPercentageChanged) notification()      {}
func (LidswitchStateChanged) notification()         {}
func (PowerSchemePersonalityChanged) notification() {}
func (DisplayStateChanged) notification()           {}
