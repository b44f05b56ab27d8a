package store

type subscription struct {
	fn func(Snapshot)
}

// Subscribe registers fn to be called with a fresh Snapshot after every
// mutation call, including calls that turned out to be no-ops. Subscribers
// run synchronously on the caller's goroutine in registration order.
// The returned func removes the subscription and may be called more than once.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	sub := &subscription{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		for i, cur := range s.subs {
			if cur == sub {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	if len(s.subs) == 0 {
		return
	}
	// a subscriber may unsubscribe while we iterate
	subs := make([]*subscription, len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(s.Snapshot())
	}
}
