package observable

import "sync"

// Callbacks is an ordered set of listeners. Emit calls every listener
// synchronously in subscription order.
type Callbacks[T any] struct {
	access    sync.Mutex
	nextID    uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id       uint64
	callback func(T)
}

// Subscribe adds callback and returns a function removing it again. The
// returned function may be called more than once.
func (c *Callbacks[T]) Subscribe(callback func(T)) (unsubscribe func()) {
	if callback == nil {
		return func() {}
	}
	c.access.Lock()
	defer c.access.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener[T]{id, callback})
	return func() {
		c.remove(id)
	}
}

func (c *Callbacks[T]) remove(id uint64) {
	c.access.Lock()
	defer c.access.Unlock()
	for index, it := range c.listeners {
		if it.id == id {
			c.listeners = append(c.listeners[:index:index], c.listeners[index+1:]...)
			return
		}
	}
}

// Emit delivers item to a snapshot of the listeners taken before the first
// call, so listeners may subscribe or unsubscribe while being called.
func (c *Callbacks[T]) Emit(item T) {
	c.access.Lock()
	listeners := c.listeners
	c.access.Unlock()
	for _, it := range listeners {
		it.callback(item)
	}
}

func (c *Callbacks[T]) Clear() {
	c.access.Lock()
	defer c.access.Unlock()
	c.listeners = nil
}
