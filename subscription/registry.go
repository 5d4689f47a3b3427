package subscription

import (
	"sync"

	"github.com/sagernet/sing-powerevent/channel"
	E "github.com/sagernet/sing-powerevent/common/exceptions"
	"github.com/sagernet/sing-powerevent/common/log"
	"github.com/sagernet/sing-powerevent/powersetting"

	"github.com/sirupsen/logrus"
)

// Handle is an OS registration handle. A zero Value is never a valid
// registration.
type Handle struct {
	Value uintptr
	Type  channel.HandleType
}

func (h Handle) IsZero() bool {
	return h.Value == 0
}

type Registrar interface {
	Register(receiver channel.Receiver, identifier powersetting.GUID) (Handle, error)
	Unregister(handle Handle) error
}

var ErrClosed = E.New("registry closed")

type RegisterError struct {
	Kind powersetting.Kind
	Err  error
}

func (e *RegisterError) Error() string {
	return "register " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *RegisterError) Unwrap() error {
	return e.Err
}

// Registry tracks one OS registration per notification kind for a single
// receiver.
type Registry struct {
	access    sync.Mutex
	registrar Registrar
	receiver  channel.Receiver
	version   powersetting.OSVersion
	logger    logrus.FieldLogger
	handles   map[powersetting.Kind]Handle
	closed    bool
}

func New(registrar Registrar, receiver channel.Receiver, version powersetting.OSVersion, logger logrus.FieldLogger) *Registry {
	return &Registry{
		registrar: registrar,
		receiver:  receiver,
		version:   version,
		logger:    log.OrNew(logger, "subscription"),
		handles:   make(map[powersetting.Kind]Handle),
	}
}

// Register registers every kind in kinds that is not already active. A
// failing kind does not stop the others; all failures are returned as
// *RegisterError values joined by E.Errors.
func (r *Registry) Register(kinds powersetting.Kind) error {
	r.access.Lock()
	defer r.access.Unlock()
	if r.closed {
		return ErrClosed
	}
	var errs []error
	for _, kind := range kinds.Flags() {
		if _, loaded := r.handles[kind]; loaded {
			continue
		}
		err := r.register(kind)
		if err != nil {
			r.logger.WithField("kind", kind.String()).Warn("register notification: ", err)
			errs = append(errs, &RegisterError{Kind: kind, Err: err})
		}
	}
	return E.Errors(errs...)
}

func (r *Registry) register(kind powersetting.Kind) error {
	identifier, loaded := powersetting.Identifier(kind, r.version)
	if !loaded {
		return E.New("no identifier for ", kind)
	}
	handle, err := r.registrar.Register(r.receiver, identifier)
	if err != nil {
		return err
	}
	if handle.IsZero() {
		return E.New("registrar returned an empty handle for ", identifier)
	}
	r.handles[kind] = handle
	return nil
}

// Unregister releases the registrations of kinds. Failures are logged and
// the kind is considered inactive regardless.
func (r *Registry) Unregister(kinds powersetting.Kind) {
	r.access.Lock()
	defer r.access.Unlock()
	for _, kind := range kinds.Flags() {
		r.unregister(kind)
	}
}

func (r *Registry) unregister(kind powersetting.Kind) {
	handle, loaded := r.handles[kind]
	if !loaded {
		return
	}
	delete(r.handles, kind)
	err := r.registrar.Unregister(handle)
	if err != nil {
		r.logger.WithField("kind", kind.String()).Debug("unregister notification: ", err)
	}
}

// Close unregisters everything. Further Register calls fail with ErrClosed.
func (r *Registry) Close() {
	r.access.Lock()
	defer r.access.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, kind := range powersetting.All.Flags() {
		r.unregister(kind)
	}
}

func (r *Registry) Active() powersetting.Kind {
	r.access.Lock()
	defer r.access.Unlock()
	var kinds powersetting.Kind
	for kind := range r.handles {
		kinds |= kind
	}
	return kinds
}

func (r *Registry) Handle(kind powersetting.Kind) (Handle, bool) {
	r.access.Lock()
	defer r.access.Unlock()
	handle, loaded := r.handles[kind]
	return handle, loaded
}
