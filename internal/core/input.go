package core

// Event is a semantic input delivered to the game, abstracted from physical
// keys, mouse buttons and timers.
type Event int

const (
	EventNone Event = iota
	// EventPrimaryAction is the press-equivalent input: start, flap, continue.
	EventPrimaryAction
	// EventSpawnTimerFired asks for a new obstacle pair.
	EventSpawnTimerFired
	// EventCollision is raised by the game itself when the avatar crashes.
	EventCollision
	// EventQuit ends the game from any mode.
	EventQuit
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventPrimaryAction:
		return "PrimaryAction"
	case EventSpawnTimerFired:
		return "SpawnTimerFired"
	case EventCollision:
		return "Collision"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventQueue buffers events between polls, preserving arrival order.
// The zero value is ready to use.
type EventQueue struct {
	events []Event
}

// Push appends an event. EventNone is dropped.
func (q *EventQueue) Push(e Event) {
	if e == EventNone {
		return
	}
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// PollInputs drains the queue, which lets an EventQueue serve directly as the
// input source of a game loop.
func (q *EventQueue) PollInputs() []Event {
	return q.Drain()
}
