package core

// Cue names a sound the platform may play. Cues are fire-and-forget:
// the simulation never waits on playback.
type Cue int

const (
	CueBounce Cue = iota
	CueBlockBreak
	CueBlockBounce
	CueWin
	CueLose
	CueLoseLife
)

// String returns the asset-style name of the cue.
func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueBlockBreak:
		return "block_break"
	case CueBlockBounce:
		return "block_bounce"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	case CueLoseLife:
		return "lose_life"
	default:
		return "unknown"
	}
}

// EventKind identifies a gameplay event.
type EventKind int

const (
	EventBlockHit EventKind = iota
	EventBlockBroken
	EventLifeLost
	EventBallReset
	EventWin
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBlockHit:
		return "BlockHit"
	case EventBlockBroken:
		return "BlockBroken"
	case EventLifeLost:
		return "LifeLost"
	case EventBallReset:
		return "BallReset"
	case EventWin:
		return "Win"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a single gameplay event. Entity is the packed handle of the
// block involved, zero for events that do not concern an entity.
type Event struct {
	Kind   EventKind
	Entity uint64
}

// Events is the per-tick event and cue queue. Producers append during a
// tick; the owner drains it once the tick completes.
type Events struct {
	events []Event
	cues   []Cue
}

// Emit appends an event.
func (q *Events) Emit(kind EventKind, entity uint64) {
	q.events = append(q.events, Event{Kind: kind, Entity: entity})
}

// Play appends a cue.
func (q *Events) Play(c Cue) {
	q.cues = append(q.cues, c)
}

// Events returns the queued events without removing them.
func (q *Events) Events() []Event {
	return q.events
}

// Cues returns the queued cues without removing them.
func (q *Events) Cues() []Cue {
	return q.cues
}

// Drain returns copies of everything queued and empties the queue.
func (q *Events) Drain() ([]Event, []Cue) {
	ev := append([]Event(nil), q.events...)
	cues := append([]Cue(nil), q.cues...)
	q.events = q.events[:0]
	q.cues = q.cues[:0]
	return ev, cues
}

// Count returns how many queued events have the given kind.
func (q *Events) Count(kind EventKind) int {
	n := 0
	for _, e := range q.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
