package driver

// EventType is a discrete intent sent to the board.
type EventType int

const (
	EventDown EventType = iota
	EventLeft
	EventRight
	EventRotate
)

func (e EventType) String() string {
	switch e {
	case EventDown:
		return "down"
	case EventLeft:
		return "left"
	case EventRight:
		return "right"
	case EventRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// EventSource tells whether an intent came from the player or from the gravity tick.
type EventSource int

const (
	SourceUser EventSource = iota
	SourceTick
)

func (s EventSource) String() string {
	if s == SourceTick {
		return "tick"
	}
	return "user"
}

// MoveEvent is one intent tagged with its source.
type MoveEvent struct {
	Type   EventType
	Source EventSource
}
