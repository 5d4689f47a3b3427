package channel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServiceChannelOpen(t *testing.T) {
	t.Parallel()
	_, err := NewServiceChannel(0).Open()
	require.Error(t, err)

	serviceChannel := NewServiceChannel(0x1234)
	receiver, err := serviceChannel.Open()
	require.NoError(t, err)
	require.Equal(t, Receiver{0x1234, HandleService}, receiver)

	require.NoError(t, serviceChannel.Close())
	_, err = serviceChannel.Open()
	require.ErrorIs(t, err, ErrClosed)
}

func TestServiceChannelControl(t *testing.T) {
	t.Parallel()
	serviceChannel := NewServiceChannel(1)
	var (
		raws    []Raw
		signals []Signal
	)
	serviceChannel.OnRaw(func(raw Raw) {
		raws = append(raws, raw)
	})
	serviceChannel.OnLifecycle(func(signal Signal) {
		signals = append(signals, signal)
	})

	data := []byte{1, 2, 3}
	require.Equal(t, NoError, serviceChannel.HandleControl(ControlPowerEvent, PowerSettingChange, data))
	require.Equal(t, NoError, serviceChannel.HandleControl(ControlInterrogate, 0, nil))
	require.Equal(t, NoError, serviceChannel.HandleControl(ControlPause, 0, nil))
	require.Equal(t, NoError, serviceChannel.HandleControl(ControlContinue, 0, nil))
	require.Equal(t, NoError, serviceChannel.HandleControl(ControlShutdown, 0, nil))
	require.Equal(t, NoError, serviceChannel.HandleControl(ControlStop, 0, nil))
	require.Equal(t, NoError, serviceChannel.HandleControl(0x40, 0, nil))

	require.Equal(t, []Raw{{PowerSettingChange, data}}, raws)
	require.Equal(t, []Signal{SignalPause, SignalContinue, SignalShutdown, SignalStop}, signals)
}

func TestServiceChannelClose(t *testing.T) {
	t.Parallel()
	serviceChannel := NewServiceChannel(1)
	var raws, signals int
	serviceChannel.OnRaw(func(Raw) { raws++ })
	serviceChannel.OnLifecycle(func(Signal) { signals++ })

	require.NoError(t, serviceChannel.Close())
	require.NoError(t, serviceChannel.Close())
	serviceChannel.HandleControl(ControlPowerEvent, PowerSettingChange, nil)
	serviceChannel.HandleControl(ControlStop, 0, nil)
	require.Zero(t, raws)
	require.Zero(t, signals)
}

func TestServiceChannelStopClosesFromHandler(t *testing.T) {
	t.Parallel()
	serviceChannel := NewServiceChannel(1)
	var signals []Signal
	serviceChannel.OnLifecycle(func(signal Signal) {
		signals = append(signals, signal)
		if signal == SignalStop {
			require.NoError(t, serviceChannel.Close())
		}
	})
	serviceChannel.HandleControl(ControlStop, 0, nil)
	serviceChannel.HandleControl(ControlStop, 0, nil)
	require.Equal(t, []Signal{SignalStop}, signals)
}

func TestHandleTypeString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "window", HandleWindow.String())
	require.Equal(t, "service", HandleService.String())
	require.Equal(t, "callback", HandleCallback.String())
	require.Equal(t, "HandleType(7)", HandleType(7).String())
	require.Equal(t, "stop", SignalStop.String())
	require.Equal(t, "Signal(9)", Signal(9).String())
}
