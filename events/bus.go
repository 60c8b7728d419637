package events

// Handler consumes one event. Handlers run synchronously on the publishing
// goroutine and must not block.
type Handler func(Event)

type subscription struct {
	handler Handler
	types   map[Type]bool
}

// Bus fans events out to subscribers in subscription order. A nil *Bus is
// valid: publishing to it drops everything, so callers never need to guard.
type Bus struct {
	subs []subscription
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler. With no types listed the handler receives
// every event, otherwise only the listed kinds.
func (b *Bus) Subscribe(h Handler, types ...Type) {
	if b == nil || h == nil {
		return
	}
	sub := subscription{handler: h}
	if len(types) > 0 {
		sub.types = make(map[Type]bool, len(types))
		for _, t := range types {
			sub.types[t] = true
		}
	}
	b.subs = append(b.subs, sub)
}

// Publish delivers e to every matching subscriber, in subscription order.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, sub := range b.subs {
		if sub.types != nil && !sub.types[e.Type] {
			continue
		}
		sub.handler(e)
	}
}
