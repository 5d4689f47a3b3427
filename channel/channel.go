package channel

import (
	"strconv"
	"sync"
	"sync/atomic"

	E "github.com/sagernet/sing-powerevent/common/exceptions"
)

// HandleType tells the registrar what kind of recipient a receiver handle is.
// The values are the DEVICE_NOTIFY_* flags.
type HandleType uint32

const (
	HandleWindow   HandleType = 0
	HandleService  HandleType = 1
	HandleCallback HandleType = 2
)

func (t HandleType) String() string {
	switch t {
	case HandleWindow:
		return "window"
	case HandleService:
		return "service"
	case HandleCallback:
		return "callback"
	default:
		return "HandleType(" + strconv.FormatUint(uint64(t), 10) + ")"
	}
}

// PowerSettingChange is PBT_POWERSETTINGCHANGE, the only event type whose
// data is a POWERBROADCAST_SETTING.
const PowerSettingChange uint32 = 0x8013

// Raw is a power notification as delivered by the operating system. Data is
// only valid until the handler returns.
type Raw struct {
	EventType uint32
	Data      []byte
}

type Receiver struct {
	Handle uintptr
	Type   HandleType
}

// Channel is a source of raw power notifications. OnRaw installs the single
// consumer; the channel filters out everything that is not a power
// notification. Close is idempotent and stops forwarding.
type Channel interface {
	Open() (Receiver, error)
	OnRaw(handler func(Raw))
	Close() error
}

type Signal uint8

const (
	SignalStop Signal = iota + 1
	SignalPause
	SignalContinue
	SignalShutdown
)

func (s Signal) String() string {
	switch s {
	case SignalStop:
		return "stop"
	case SignalPause:
		return "pause"
	case SignalContinue:
		return "continue"
	case SignalShutdown:
		return "shutdown"
	default:
		return "Signal(" + strconv.Itoa(int(s)) + ")"
	}
}

// LifecycleChannel is implemented by channels that also carry service
// lifecycle requests.
type LifecycleChannel interface {
	Channel
	OnLifecycle(handler func(Signal)) (unsubscribe func())
}

var (
	ErrClosed      = E.New("channel closed")
	ErrUnsupported = E.New("power notifications are only supported on windows")
)

type forwarder struct {
	access  sync.RWMutex
	handler func(Raw)
	closed  atomic.Bool
}

func (f *forwarder) OnRaw(handler func(Raw)) {
	f.access.Lock()
	defer f.access.Unlock()
	f.handler = handler
}

func (f *forwarder) forward(raw Raw) bool {
	if f.closed.Load() {
		return false
	}
	f.access.RLock()
	handler := f.handler
	f.access.RUnlock()
	if handler == nil {
		return false
	}
	handler(raw)
	return true
}
