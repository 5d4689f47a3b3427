package eventlog

import (
	"testing"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/common/observable"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		notification powersetting.Notification
		entry        Entry
	}{
		{
			powersetting.PowerSchemePersonalityChanged{Personality: powersetting.HighPerformance, Known: true},
			Entry{1002, "The active power scheme personality has changed: HighPerformance"},
		},
		{
			powersetting.PowerSchemePersonalityChanged{},
			Entry{1000, "The active power scheme personality has changed: PowerSaver"},
		},
		{
			powersetting.PowerSourceChanged{Condition: powersetting.PoDc},
			Entry{2001, "The system power source has changed: PoDc"},
		},
		{
			powersetting.LidswitchStateChanged{Open: true},
			Entry{3001, "The lid switch state has changed: Open"},
		},
		{
			powersetting.LidswitchStateChanged{},
			Entry{3000, "The lid switch state has changed: Closed"},
		},
		{
			powersetting.BatteryPercentageChanged{Percentage: 42},
			Entry{4042, "The remaining battery capacity has changed: 42%"},
		},
		{
			powersetting.DisplayStateChanged{State: powersetting.DisplayDimmed},
			Entry{5002, "The current monitor's display state has changed: " + powersetting.DisplayDimmed.String()},
		},
	} {
		require.Equal(t, testCase.entry, Translate(testCase.notification))
	}
}

type fakeSource struct {
	observable.Callbacks[powersetting.Notification]
}

func (s *fakeSource) OnNotification(handler func(powersetting.Notification)) (unsubscribe func()) {
	return s.Subscribe(handler)
}

type writerFunc func(eid uint32, msg string) error

func (f writerFunc) Info(eid uint32, msg string) error {
	return f(eid, msg)
}

func TestAttach(t *testing.T) {
	t.Parallel()
	var source fakeSource
	var entries []Entry
	failing := writerFunc(func(uint32, string) error {
		return E.New("event log full")
	})
	recording := writerFunc(func(eid uint32, msg string) error {
		entries = append(entries, Entry{eid, msg})
		return nil
	})
	unsubscribe := Attach(&source, failing, recording, NewLogWriter(nil))

	source.Emit(powersetting.BatteryPercentageChanged{Percentage: 7})
	require.Equal(t, []Entry{{4007, "The remaining battery capacity has changed: 7%"}}, entries)

	unsubscribe()
	source.Emit(powersetting.BatteryPercentageChanged{Percentage: 8})
	require.Len(t, entries, 1)
}
