package powerevent

import (
	"context"
	"sync/atomic"

	"github.com/sagernet/sing-powerevent/channel"
	"github.com/sagernet/sing-powerevent/common"
	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/common/log"
	"github.com/sagernet/sing-powerevent/common/observable"
	"github.com/sagernet/sing-powerevent/powersetting"
	"github.com/sagernet/sing-powerevent/subscription"

	"github.com/sirupsen/logrus"
)

var ErrClosed = E.New("dispatcher closed")

type State uint8

const (
	StateCreated State = iota
	StateActive
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateActive:
		return "active"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

type Options struct {
	Channel       channel.Channel
	Registrar     subscription.Registrar
	Version       powersetting.OSVersion
	Notifications powersetting.Kind
	Logger        logrus.FieldLogger
}

// Dispatcher decodes the raw notifications of a channel and publishes each
// one on the stream of its kind. Subscribers run synchronously on the
// delivery thread and must return promptly.
type Dispatcher struct {
	ctx             context.Context
	cancel          context.CancelFunc
	logger          logrus.FieldLogger
	channel         channel.Channel
	registry        *subscription.Registry
	state           atomic.Uint32
	closed          chan struct{}
	closeErr        error
	stopLifecycle   func()
	powerSource     observable.Callbacks[powersetting.PowerSourceChanged]
	battery         observable.Callbacks[powersetting.BatteryPercentageChanged]
	lidswitch       observable.Callbacks[powersetting.LidswitchStateChanged]
	personality     observable.Callbacks[powersetting.PowerSchemePersonalityChanged]
	displayState    observable.Callbacks[powersetting.DisplayStateChanged]
	notificationAll observable.Callbacks[powersetting.Notification]
}

// New opens the channel and registers the initial notifications. A channel
// that fails to open is returned as an error with no dispatcher. Failed
// registrations are returned together with a usable dispatcher.
func New(ctx context.Context, options Options) (*Dispatcher, error) {
	if options.Channel == nil {
		return nil, E.New("missing channel")
	}
	if options.Registrar == nil {
		return nil, E.New("missing registrar")
	}
	logger := log.OrNew(options.Logger, "powerevent")
	receiver, err := options.Channel.Open()
	if err != nil {
		return nil, E.Cause(err, "open channel")
	}
	logger.Debug("channel opened: ", receiver.Type)
	ctx, cancel := context.WithCancel(ctx)
	dispatcher := &Dispatcher{
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		channel:  options.Channel,
		registry: subscription.New(options.Registrar, receiver, options.Version, logger),
		closed:   make(chan struct{}),
	}
	dispatcher.state.Store(uint32(StateActive))
	options.Channel.OnRaw(dispatcher.handleRaw)
	if lifecycleChannel, isLifecycle := options.Channel.(channel.LifecycleChannel); isLifecycle {
		dispatcher.stopLifecycle = lifecycleChannel.OnLifecycle(dispatcher.handleLifecycle)
	}
	common.ContextAfterFunc(ctx, func() {
		dispatcher.Close()
	})
	return dispatcher, dispatcher.registry.Register(options.Notifications)
}

func (d *Dispatcher) handleRaw(raw channel.Raw) {
	if d.State() != StateActive || raw.EventType != channel.PowerSettingChange {
		return
	}
	notification, loaded := powersetting.Decode(raw.Data)
	if !loaded {
		return
	}
	d.publish(notification)
}

func (d *Dispatcher) publish(notification powersetting.Notification) {
	switch event := notification.(type) {
	case powersetting.PowerSourceChanged:
		d.powerSource.Emit(event)
	case powersetting.BatteryPercentageChanged:
		d.battery.Emit(event)
	case powersetting.LidswitchStateChanged:
		d.lidswitch.Emit(event)
	case powersetting.PowerSchemePersonalityChanged:
		d.personality.Emit(event)
	case powersetting.DisplayStateChanged:
		d.displayState.Emit(event)
	}
	d.notificationAll.Emit(notification)
}

func (d *Dispatcher) handleLifecycle(signal channel.Signal) {
	if signal == channel.SignalStop {
		d.logger.Debug("service stop requested")
		d.Close()
	}
}

func (d *Dispatcher) OnPowerSource(handler func(powersetting.PowerSourceChanged)) (unsubscribe func()) {
	return d.powerSource.Subscribe(handler)
}

func (d *Dispatcher) OnBatteryPercentage(handler func(powersetting.BatteryPercentageChanged)) (unsubscribe func()) {
	return d.battery.Subscribe(handler)
}

func (d *Dispatcher) OnLidswitchState(handler func(powersetting.LidswitchStateChanged)) (unsubscribe func()) {
	return d.lidswitch.Subscribe(handler)
}

func (d *Dispatcher) OnPowerSchemePersonality(handler func(powersetting.PowerSchemePersonalityChanged)) (unsubscribe func()) {
	return d.personality.Subscribe(handler)
}

func (d *Dispatcher) OnDisplayState(handler func(powersetting.DisplayStateChanged)) (unsubscribe func()) {
	return d.displayState.Subscribe(handler)
}

// OnNotification receives every decoded notification after the typed
// subscribers of its kind.
func (d *Dispatcher) OnNotification(handler func(powersetting.Notification)) (unsubscribe func()) {
	return d.notificationAll.Subscribe(handler)
}

func (d *Dispatcher) Register(kinds powersetting.Kind) error {
	if d.State() != StateActive {
		return ErrClosed
	}
	err := d.registry.Register(kinds)
	if E.IsMulti(err, subscription.ErrClosed) {
		return ErrClosed
	}
	return err
}

func (d *Dispatcher) Unregister(kinds powersetting.Kind) {
	if d.State() != StateActive {
		return
	}
	d.registry.Unregister(kinds)
}

func (d *Dispatcher) Active() powersetting.Kind {
	return d.registry.Active()
}

func (d *Dispatcher) State() State {
	return State(d.state.Load())
}

// Done is closed when Close is called or the context passed to New is done.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.ctx.Done()
}

// Close stops delivery, releases every registration and closes the channel.
// Only the first call does the work and returns the channel close error.
// Calls racing with it, including ones made by subscribers on the delivery
// thread, return nil at once; calls after it has finished return its error.
func (d *Dispatcher) Close() error {
	if !d.state.CompareAndSwap(uint32(StateActive), uint32(StateDisposed)) {
		select {
		case <-d.closed:
			return d.closeErr
		default:
			return nil
		}
	}
	if d.stopLifecycle != nil {
		d.stopLifecycle()
	}
	d.registry.Close()
	d.closeErr = d.channel.Close()
	if d.closeErr != nil {
		d.logger.Debug("close channel: ", d.closeErr)
	}
	d.cancel()
	close(d.closed)
	d.logger.Debug("dispatcher closed")
	return d.closeErr
}
