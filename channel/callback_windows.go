package channel

import (
	"sync"
	"sync/atomic"
	"unsafe"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/common/winpowrprof"
)

var (
	callbackTemplate = winpowrprof.NewSubscribeParameters(dispatchPowerCallback, 0)
	callbackNextID   atomic.Uintptr
	callbackChannels sync.Map // uintptr -> *CallbackChannel
)

func dispatchPowerCallback(context uintptr, changeType uint32, setting uintptr) uintptr {
	if value, loaded := callbackChannels.Load(context); loaded {
		value.(*CallbackChannel).forward(Raw{changeType, settingBytes(setting)})
	}
	return 0
}

var _ Channel = (*CallbackChannel)(nil)

// CallbackChannel receives notifications through a powrprof callback. The
// callback runs on a system thread pool, so the handler may be invoked
// concurrently.
type CallbackChannel struct {
	forwarder
	access     sync.Mutex
	id         uintptr
	parameters *winpowrprof.DeviceNotifySubscribeParameters
}

func NewCallbackChannel() *CallbackChannel {
	return &CallbackChannel{}
}

func (c *CallbackChannel) Open() (Receiver, error) {
	c.access.Lock()
	defer c.access.Unlock()
	if c.closed.Load() {
		return Receiver{}, ErrClosed
	}
	if c.parameters == nil {
		err := winpowrprof.Available()
		if err != nil {
			return Receiver{}, E.Cause(err, "power setting callbacks unavailable")
		}
		c.id = callbackNextID.Add(1)
		parameters := callbackTemplate
		parameters.Context = c.id
		c.parameters = &parameters
		callbackChannels.Store(c.id, c)
	}
	return Receiver{uintptr(unsafe.Pointer(c.parameters)), HandleCallback}, nil
}

func (c *CallbackChannel) Close() error {
	c.access.Lock()
	defer c.access.Unlock()
	if c.closed.Swap(true) {
		return nil
	}
	if c.parameters != nil {
		callbackChannels.Delete(c.id)
	}
	return nil
}
