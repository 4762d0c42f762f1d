package sim

type EventType int

const (
	EventStep EventType = iota
	EventMutation
	EventOutbreakOver
)

type Event struct {
	Type   EventType
	Step   int
	Node   int // Node that triggered the event, -1 when not node specific.
	Strain int
	Count  int // Generic payload (e.g. newly infected for EventStep).
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
