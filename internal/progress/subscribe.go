package progress

import "github.com/google/uuid"

// Handler receives store notifications.
type Handler func(Event)

type subscription struct {
	id uuid.UUID
	h  Handler
}

// Subscribe registers h for every subsequent notification. Handlers run
// synchronously, in registration order, after the change has been
// persisted. The returned func removes the subscription; calling it more
// than once is harmless.
func (s *Store) Subscribe(h Handler) (cancel func()) {
	id := uuid.New()

	s.subsMu.Lock()
	s.subs = append(s.subs, subscription{id: id, h: h})
	s.subsMu.Unlock()

	return func() { s.unsubscribe(id) }
}

func (s *Store) unsubscribe(id uuid.UUID) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *Store) notify(ev Event) {
	s.subsMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.h(ev)
	}
}
