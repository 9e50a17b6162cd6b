package session

import (
	"time"

	"edumart/internal/logger"

	"go.uber.org/zap"
)

type EventKind int

const (
	EventSignedIn EventKind = iota + 1
	EventSignedOut
	// EventUnauthorized means the server rejected the credential; views
	// should navigate to the login entry point.
	EventUnauthorized
)

func (k EventKind) String() string {
	switch k {
	case EventSignedIn:
		return "signed_in"
	case EventSignedOut:
		return "signed_out"
	case EventUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	At   time.Time
}

// Subscribe returns a channel receiving session events and a func that
// unsubscribes and closes it. Slow subscribers lose events rather than block
// the publisher.
func (s *Session) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once bool
	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if once {
			return
		}
		once = true
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Session) publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			logger.L().Warn("dropping session event for slow subscriber",
				zap.Int("subscriber", id),
				zap.String("event", ev.Kind.String()),
			)
		}
	}
}
