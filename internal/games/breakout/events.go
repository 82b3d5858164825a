package breakout

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota
	EventWallBounce
	EventCeilingBounce
	EventFloorReset
	EventPaddleHit
	EventRoundReset
	EventPhaseChanged
)

var eventNames = [...]string{
	EventBrickDestroyed: "brick",
	EventWallBounce:     "wall",
	EventCeilingBounce:  "ceiling",
	EventFloorReset:     "floor",
	EventPaddleHit:      "paddle",
	EventRoundReset:     "round",
	EventPhaseChanged:   "phase",
}

// String returns a short event name suitable for logs.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Event describes a single state change. Col and Row are set for brick
// events, Phase for phase changes.
type Event struct {
	Kind     EventKind
	Tick     uint64
	Col, Row int
	Phase    Phase
	X, Y     float64 // Ball position when the event fired
}

// Listener receives events synchronously from inside Tick.
// Listeners may read the session but must not mutate it.
type Listener func(Event)

// Subscribe registers a listener for all subsequent events.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(e Event) {
	if len(s.listeners) == 0 {
		return
	}
	e.Tick = s.stats.Ticks
	for _, l := range s.listeners {
		l(e)
	}
}
