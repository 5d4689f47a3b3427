//go:build !windows

package channel

type WindowChannel struct {
	forwarder
}

func NewWindowChannel() *WindowChannel {
	return &WindowChannel{}
}

func (c *WindowChannel) Open() (Receiver, error) {
	return Receiver{}, ErrUnsupported
}

func (c *WindowChannel) Close() error {
	c.closed.Store(true)
	return nil
}

type CallbackChannel struct {
	forwarder
}

func NewCallbackChannel() *CallbackChannel {
	return &CallbackChannel{}
}

func (c *CallbackChannel) Open() (Receiver, error) {
	return Receiver{}, ErrUnsupported
}

func (c *CallbackChannel) Close() error {
	c.closed.Store(true)
	return nil
}
