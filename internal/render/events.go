package render

// EventType identifies a viewport notification
type EventType int

const (
	// EventMove fires on every pan or zoom step
	EventMove EventType = iota
	// EventMoveEnd fires once a pan or zoom has settled
	EventMoveEnd
	// EventViewReset fires when the zoom changes and pixel geometry must be rebuilt
	EventViewReset
)

// String returns a string representation of the event type
func (e EventType) String() string {
	switch e {
	case EventMove:
		return "move"
	case EventMoveEnd:
		return "moveend"
	case EventViewReset:
		return "viewreset"
	default:
		return "unknown"
	}
}

// Listener receives viewport notifications. Listeners are compared by
// identity, so pointer receivers should be used.
type Listener interface {
	HandleEvent(EventType)
}

// Events is a synchronous publish/subscribe registry
type Events struct {
	listeners map[EventType][]Listener
}

// NewEvents creates an empty registry
func NewEvents() *Events {
	return &Events{listeners: make(map[EventType][]Listener)}
}

// On subscribes l to ev. Subscribing twice has no extra effect.
func (e *Events) On(ev EventType, l Listener) {
	for _, existing := range e.listeners[ev] {
		if existing == l {
			return
		}
	}
	e.listeners[ev] = append(e.listeners[ev], l)
}

// Off unsubscribes l from ev
func (e *Events) Off(ev EventType, l Listener) {
	list := e.listeners[ev]
	for i, existing := range list {
		if existing == l {
			e.listeners[ev] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Fire notifies the listeners of ev in subscription order
func (e *Events) Fire(ev EventType) {
	// Copy so handlers may unsubscribe themselves
	list := append([]Listener(nil), e.listeners[ev]...)
	for _, l := range list {
		l.HandleEvent(ev)
	}
}

// Count returns the number of listeners subscribed to ev
func (e *Events) Count(ev EventType) int {
	return len(e.listeners[ev])
}
