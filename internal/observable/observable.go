package observable

import "sync"

// Observable holds a value and notifies subscribers whenever it is set.
type Observable[T any] struct {
	mu          sync.RWMutex
	value       T
	nextID      int
	subscribers map[int]func(T)
	order       []int
}

// New creates an Observable holding the given initial value.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:       initial,
		subscribers: make(map[int]func(T)),
	}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores the value and calls every subscriber with it, in subscription order.
// Subscribers run after the lock is released so they may read or set other observables.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	fns := make([]func(T), 0, len(o.order))
	for _, id := range o.order {
		fns = append(fns, o.subscribers[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// Subscribe registers fn for change notifications and returns a function that removes it.
func (o *Observable[T]) Subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	o.subscribers[id] = fn
	o.order = append(o.order, id)

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if _, ok := o.subscribers[id]; !ok {
			return
		}
		delete(o.subscribers, id)
		for i, existing := range o.order {
			if existing == id {
				o.order = append(o.order[:i], o.order[i+1:]...)
				break
			}
		}
	}
}
