package pause

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sagernet/sing-powerevent/common/observable"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	t.Parallel()
	manager := NewDefaultManager(context.Background())
	var events []Event
	unregister := manager.RegisterCallback(func(event Event) {
		events = append(events, event)
	})
	require.False(t, manager.IsPaused())
	manager.WaitActive()

	manager.DeviceWake()
	require.Empty(t, events)

	manager.DevicePause()
	manager.DevicePause()
	require.True(t, manager.IsPaused())
	require.Equal(t, []Event{EventDevicePaused}, events)

	waited := make(chan struct{})
	go func() {
		manager.WaitActive()
		close(waited)
	}()
	manager.DeviceWake()
	select {
	case <-waited:
	case <-time.After(5 * time.Second):
		t.Fatal("WaitActive not released")
	}
	require.Equal(t, []Event{EventDevicePaused, EventDeviceWake}, events)

	unregister()
	manager.DevicePause()
	require.Len(t, events, 2)
}

func TestWaitActiveContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	manager := NewDefaultManager(ctx)
	manager.DevicePause()
	cancel()
	manager.WaitActive()
	require.True(t, manager.IsPaused())
}

type fakeSource struct {
	display   observable.Callbacks[powersetting.DisplayStateChanged]
	lidswitch observable.Callbacks[powersetting.LidswitchStateChanged]
}

func (s *fakeSource) OnDisplayState(handler func(powersetting.DisplayStateChanged)) (unsubscribe func()) {
	return s.display.Subscribe(handler)
}

func (s *fakeSource) OnLidswitchState(handler func(powersetting.LidswitchStateChanged)) (unsubscribe func()) {
	return s.lidswitch.Subscribe(handler)
}

func TestAttach(t *testing.T) {
	t.Parallel()
	source := new(fakeSource)
	manager := NewDefaultManager(context.Background())
	detach := Attach(source, manager)

	source.display.Emit(powersetting.DisplayStateChanged{State: powersetting.DisplayOff})
	require.True(t, manager.IsPaused())
	source.lidswitch.Emit(powersetting.LidswitchStateChanged{Open: false})
	source.display.Emit(powersetting.DisplayStateChanged{State: powersetting.DisplayDimmed})
	require.True(t, manager.IsPaused())
	source.lidswitch.Emit(powersetting.LidswitchStateChanged{Open: true})
	require.False(t, manager.IsPaused())

	detach()
	source.display.Emit(powersetting.DisplayStateChanged{State: powersetting.DisplayOff})
	require.False(t, manager.IsPaused())
}

type gatedManager struct {
	Manager
	entered chan struct{}
	release chan struct{}
	access  sync.Mutex
	calls   []Event
}

func (m *gatedManager) DevicePause() {
	close(m.entered)
	<-m.release
	m.record(EventDevicePaused)
}

func (m *gatedManager) DeviceWake() {
	m.record(EventDeviceWake)
}

func (m *gatedManager) record(event Event) {
	m.access.Lock()
	defer m.access.Unlock()
	m.calls = append(m.calls, event)
}

func TestAttachConcurrentUpdatesInOrder(t *testing.T) {
	t.Parallel()
	source := new(fakeSource)
	manager := &gatedManager{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	defer Attach(source, manager)()

	pauseDone := make(chan struct{})
	go func() {
		source.display.Emit(powersetting.DisplayStateChanged{State: powersetting.DisplayOff})
		close(pauseDone)
	}()
	<-manager.entered

	wakeDone := make(chan struct{})
	go func() {
		source.display.Emit(powersetting.DisplayStateChanged{State: powersetting.DisplayOn})
		close(wakeDone)
	}()
	select {
	case <-wakeDone:
		t.Fatal("wake delivered while pause in progress")
	case <-time.After(50 * time.Millisecond):
	}
	close(manager.release)
	<-pauseDone
	<-wakeDone

	manager.access.Lock()
	defer manager.access.Unlock()
	require.Equal(t, []Event{EventDevicePaused, EventDeviceWake}, manager.calls)
}
