package pause

import (
	"context"
	"sync"

	"github.com/sagernet/sing-powerevent/common/observable"
)

type Event uint8

const (
	EventDevicePaused Event = iota + 1
	EventDeviceWake
)

func (e Event) String() string {
	switch e {
	case EventDevicePaused:
		return "device paused"
	case EventDeviceWake:
		return "device wake"
	default:
		return "unknown"
	}
}

// Manager tracks whether the device is in use. Long running work can wait
// for the device to become active again or pause timers on its events.
type Manager interface {
	DevicePause()
	DeviceWake()
	DevicePauseChan() <-chan struct{}
	IsPaused() bool
	WaitActive()
	RegisterCallback(callback func(Event)) (unregister func())
}

type defaultManager struct {
	ctx         context.Context
	access      sync.Mutex
	devicePause chan struct{}
	callbacks   observable.Callbacks[Event]
}

func NewDefaultManager(ctx context.Context) Manager {
	devicePauseChan := make(chan struct{})
	close(devicePauseChan)
	return &defaultManager{
		ctx:         ctx,
		devicePause: devicePauseChan,
	}
}

func (d *defaultManager) DevicePause() {
	d.access.Lock()
	select {
	case <-d.devicePause:
		d.devicePause = make(chan struct{})
	default:
		d.access.Unlock()
		return
	}
	d.access.Unlock()
	d.callbacks.Emit(EventDevicePaused)
}

func (d *defaultManager) DeviceWake() {
	d.access.Lock()
	select {
	case <-d.devicePause:
		d.access.Unlock()
		return
	default:
		close(d.devicePause)
	}
	d.access.Unlock()
	d.callbacks.Emit(EventDeviceWake)
}

// DevicePauseChan is closed while the device is active.
func (d *defaultManager) DevicePauseChan() <-chan struct{} {
	d.access.Lock()
	defer d.access.Unlock()
	return d.devicePause
}

func (d *defaultManager) IsPaused() bool {
	select {
	case <-d.DevicePauseChan():
		return false
	default:
		return true
	}
}

func (d *defaultManager) WaitActive() {
	select {
	case <-d.DevicePauseChan():
	case <-d.ctx.Done():
	}
}

func (d *defaultManager) RegisterCallback(callback func(Event)) (unregister func()) {
	return d.callbacks.Subscribe(callback)
}
