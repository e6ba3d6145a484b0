package gsettings

import (
	"slices"
	"sync"
)

// ChangeType tells observers what happened to a key.
type ChangeType int

const (
	// ChangeSet is sent when a value is written.
	ChangeSet ChangeType = iota
	// ChangeReset is sent when a key goes back to its default.
	ChangeReset
	// ChangeWritable is sent when a key is locked or unlocked.
	ChangeWritable
)

func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeReset:
		return "reset"
	case ChangeWritable:
		return "writable"
	default:
		return "unknown"
	}
}

// Change is a committed modification of a key.
type Change struct {
	SchemaID string
	Key      string
	Type     ChangeType
	Value    Variant
}

// Observer receives changes. It runs on the goroutine that made the change,
// after the store lock has been released.
type Observer func(change Change)

// Subscription is a registered observer.
type Subscription struct {
	id       uint64
	notifier *Notifier
	once     sync.Once
}

// Unsubscribe removes the observer. Calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.notifier == nil {
		return
	}
	s.once.Do(func() {
		s.notifier.unsubscribe(s.id)
	})
}

type subscriber struct {
	schemaID string
	key      string // empty matches every key of the schema
	observer Observer
}

// Notifier fans changes out to subscribers filtered by schema and key.
type Notifier struct {
	mu     sync.RWMutex
	subs   map[uint64]subscriber
	nextID uint64
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[uint64]subscriber)}
}

// Subscribe registers observer for changes of key in schemaID.
// An empty key subscribes to the whole schema.
func (n *Notifier) Subscribe(schemaID, key string, observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = subscriber{schemaID: schemaID, key: key, observer: observer}

	return &Subscription{id: id, notifier: n}
}

// Notify delivers change to every matching observer in subscription order.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	ids := make([]uint64, 0, len(n.subs))
	for id, sub := range n.subs {
		if sub.schemaID == change.SchemaID && (sub.key == "" || sub.key == change.Key) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	observers := make([]Observer, len(ids))
	for i, id := range ids {
		observers[i] = n.subs[id].observer
	}
	n.mu.RUnlock()

	// call observers outside the lock
	for _, obs := range observers {
		obs(change)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, id)
}
