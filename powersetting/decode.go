package powersetting

// Decode turns a POWERBROADCAST_SETTING buffer into a typed notification.
// Unknown identifiers and malformed buffers are reported as a miss, not as
// an error.
func Decode(b []byte) (Notification, bool) {
	record, ok := ParseRecord(b)
	if !ok {
		return nil, false
	}
	return DecodeRecord(record)
}

func DecodeRecord(record Record) (Notification, bool) {
	kind, loaded := KindOf(record.Identifier)
	if !loaded {
		return nil, false
	}
	switch kind {
	case PowerSource:
		return PowerSourceChanged{PowerCondition(record.Uint32())}, true
	case BatteryPercentage:
		return BatteryPercentageChanged{int(record.Uint32())}, true
	case LidswitchState:
		return LidswitchStateChanged{record.Uint32() != 0}, true
	case PowerSchemePersonality:
		var notification PowerSchemePersonalityChanged
		if record.IsGUID() {
			notification.Personality, notification.Known = personalityByIdentifier[record.GUID()]
		}
		return notification, true
	case DisplayState:
		return DisplayStateChanged{Display(record.Uint32())}, true
	}
	return nil, false
}
