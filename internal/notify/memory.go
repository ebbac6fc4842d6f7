package notify

import (
	"context"
	"sync"
)

// MemoryNotifier keeps notices in process. Used when no redis is configured
// and in tests.
type MemoryNotifier struct {
	mu      sync.Mutex
	pending map[uint][]Notice
	subs    map[uint]map[chan Notice]struct{}
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{
		pending: make(map[uint][]Notice),
		subs:    make(map[uint]map[chan Notice]struct{}),
	}
}

func (m *MemoryNotifier) Notify(_ context.Context, userID uint, n Notice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[userID] = append(m.pending[userID], n)
	for ch := range m.subs[userID] {
		select {
		case ch <- n:
		default:
		}
	}
	return nil
}

func (m *MemoryNotifier) Drain(_ context.Context, userID uint) ([]Notice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.pending[userID]
	delete(m.pending, userID)
	if out == nil {
		out = []Notice{}
	}
	return out, nil
}

func (m *MemoryNotifier) Subscribe(_ context.Context, userID uint) (<-chan Notice, func(), error) {
	ch := make(chan Notice, 16)
	m.mu.Lock()
	if m.subs[userID] == nil {
		m.subs[userID] = make(map[chan Notice]struct{})
	}
	m.subs[userID][ch] = struct{}{}
	m.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs[userID], ch)
			if len(m.subs[userID]) == 0 {
				delete(m.subs, userID)
			}
			m.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel, nil
}
