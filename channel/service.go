package channel

import (
	"sync"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/common/observable"
)

// Service control codes from winsvc.h.
const (
	ControlStop        uint32 = 0x00000001
	ControlPause       uint32 = 0x00000002
	ControlContinue    uint32 = 0x00000003
	ControlInterrogate uint32 = 0x00000004
	ControlShutdown    uint32 = 0x00000005
	ControlPowerEvent  uint32 = 0x0000000D

	NoError uint32 = 0
)

var _ LifecycleChannel = (*ServiceChannel)(nil)

// ServiceChannel receives notifications through the control handler of a
// running service. Every control request reaches HandleControl; the receiver
// is the service status handle.
type ServiceChannel struct {
	forwarder
	statusHandle uintptr
	lifecycle    observable.Callbacks[Signal]
	closeOnce    sync.Once
	release      func()
}

func NewServiceChannel(statusHandle uintptr) *ServiceChannel {
	return &ServiceChannel{statusHandle: statusHandle}
}

func (c *ServiceChannel) Open() (Receiver, error) {
	if c.closed.Load() {
		return Receiver{}, ErrClosed
	}
	if c.statusHandle == 0 {
		return Receiver{}, E.New("missing service status handle")
	}
	return Receiver{c.statusHandle, HandleService}, nil
}

func (c *ServiceChannel) OnLifecycle(handler func(Signal)) (unsubscribe func()) {
	return c.lifecycle.Subscribe(handler)
}

// HandleControl maps a control request. Lifecycle controls are surfaced as
// signals, power events as raw notifications and interrogation is answered
// without emitting anything. The result is always NO_ERROR.
func (c *ServiceChannel) HandleControl(control uint32, eventType uint32, data []byte) uint32 {
	if c.closed.Load() {
		return NoError
	}
	switch control {
	case ControlStop:
		c.lifecycle.Emit(SignalStop)
	case ControlPause:
		c.lifecycle.Emit(SignalPause)
	case ControlContinue:
		c.lifecycle.Emit(SignalContinue)
	case ControlShutdown:
		c.lifecycle.Emit(SignalShutdown)
	case ControlInterrogate:
	case ControlPowerEvent:
		c.forward(Raw{eventType, data})
	}
	return NoError
}

// Close stops forwarding. The status handle belongs to the service control
// manager and is left alone.
func (c *ServiceChannel) Close() error {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.lifecycle.Clear()
		if c.release != nil {
			c.release()
		}
	})
	return nil
}
