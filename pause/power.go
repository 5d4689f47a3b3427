package pause

import (
	"sync"

	"github.com/sagernet/sing-powerevent/powersetting"
)

type Source interface {
	OnDisplayState(handler func(powersetting.DisplayStateChanged)) (unsubscribe func())
	OnLidswitchState(handler func(powersetting.LidswitchStateChanged)) (unsubscribe func())
}

// Attach pauses the device while the display is off or the lid is closed and
// wakes it once neither holds.
func Attach(source Source, manager Manager) (detach func()) {
	tracker := &powerTracker{manager: manager}
	unsubscribeDisplay := source.OnDisplayState(func(event powersetting.DisplayStateChanged) {
		tracker.update(func() {
			tracker.displayOff = event.State == powersetting.DisplayOff
		})
	})
	unsubscribeLid := source.OnLidswitchState(func(event powersetting.LidswitchStateChanged) {
		tracker.update(func() {
			tracker.lidClosed = !event.Open
		})
	})
	return func() {
		unsubscribeDisplay()
		unsubscribeLid()
	}
}

type powerTracker struct {
	access     sync.Mutex
	manager    Manager
	displayOff bool
	lidClosed  bool
}

// update applies block and reports the result to the manager. The manager is
// called under the lock so concurrent updates reach it in the order they were
// applied.
func (t *powerTracker) update(block func()) {
	t.access.Lock()
	defer t.access.Unlock()
	block()
	if t.displayOff || t.lidClosed {
		t.manager.DevicePause()
	} else {
		t.manager.DeviceWake()
	}
}
