package gsettings

import (
	"sync"

	"github.com/thorn-jmh/errorst"
)

// Store is the storage backend behind Settings handles. Keys are addressed
// by schema id and literal key name.
type Store interface {
	// Key describes a key, failing with ErrUnknownSchema or ErrUnknownKey.
	Key(schemaID, key string) (*KeyInfo, error)
	// Value returns the user value of a key, or its default when unset.
	Value(schemaID, key string) (Variant, error)
	// SetValue writes a value after type and choice checks.
	SetValue(schemaID, key string, v Variant) error
	// Reset drops the user value of a key.
	Reset(schemaID, key string) error
	// Writable reports whether SetValue and Reset may succeed for a key.
	Writable(schemaID, key string) bool
	// Subscribe registers observer for committed changes of key, or of the
	// whole schema when key is empty.
	Subscribe(schemaID, key string, observer Observer) *Subscription
}

// MemoryStore keeps user values in process memory. It is safe for
// concurrent use; observers run after the lock is released.
type MemoryStore struct {
	src      *Source
	notifier *Notifier

	mu     sync.RWMutex
	values map[string]map[string]Variant
	locked map[string]map[string]bool
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(src *Source) *MemoryStore {
	return &MemoryStore{
		src:      src,
		notifier: NewNotifier(),
		values:   make(map[string]map[string]Variant),
		locked:   make(map[string]map[string]bool),
	}
}

func (m *MemoryStore) Source() *Source {
	return m.src
}

func (m *MemoryStore) Key(schemaID, key string) (*KeyInfo, error) {
	return m.src.Key(schemaID, key)
}

func (m *MemoryStore) Value(schemaID, key string) (Variant, error) {
	info, err := m.src.Key(schemaID, key)
	if err != nil {
		return Variant{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[schemaID][key]; ok {
		return v, nil
	}
	return info.Default, nil
}

func (m *MemoryStore) SetValue(schemaID, key string, v Variant) error {
	info, err := m.src.Key(schemaID, key)
	if err != nil {
		return err
	}
	if err := info.check(v); err != nil {
		return err
	}

	m.mu.Lock()
	if m.locked[schemaID][key] {
		m.mu.Unlock()
		return errorst.Wrap(ErrNotWritable, "key <%s> of schema <%s> is locked", key, schemaID)
	}
	if m.values[schemaID] == nil {
		m.values[schemaID] = make(map[string]Variant)
	}
	m.values[schemaID][key] = v
	m.mu.Unlock()

	m.notifier.Notify(Change{SchemaID: schemaID, Key: key, Type: ChangeSet, Value: v})
	return nil
}

func (m *MemoryStore) Reset(schemaID, key string) error {
	info, err := m.src.Key(schemaID, key)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.locked[schemaID][key] {
		m.mu.Unlock()
		return errorst.Wrap(ErrNotWritable, "key <%s> of schema <%s> is locked", key, schemaID)
	}
	delete(m.values[schemaID], key)
	m.mu.Unlock()

	m.notifier.Notify(Change{SchemaID: schemaID, Key: key, Type: ChangeReset, Value: info.Default})
	return nil
}

func (m *MemoryStore) Writable(schemaID, key string) bool {
	if _, err := m.src.Key(schemaID, key); err != nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.locked[schemaID][key]
}

func (m *MemoryStore) Subscribe(schemaID, key string, observer Observer) *Subscription {
	return m.notifier.Subscribe(schemaID, key, observer)
}

// Lock makes a key read-only, as a system administrator lockdown would.
func (m *MemoryStore) Lock(schemaID, key string) error {
	return m.setLocked(schemaID, key, true)
}

// Unlock makes a locked key writable again.
func (m *MemoryStore) Unlock(schemaID, key string) error {
	return m.setLocked(schemaID, key, false)
}

func (m *MemoryStore) setLocked(schemaID, key string, locked bool) error {
	if _, err := m.src.Key(schemaID, key); err != nil {
		return err
	}

	m.mu.Lock()
	if m.locked[schemaID] == nil {
		m.locked[schemaID] = make(map[string]bool)
	}
	changed := m.locked[schemaID][key] != locked
	m.locked[schemaID][key] = locked
	m.mu.Unlock()

	if changed {
		m.notifier.Notify(Change{SchemaID: schemaID, Key: key, Type: ChangeWritable})
	}
	return nil
}

// >>>>>>>>>>>>>>>>>>>> default store >>>>>>>>>>>>>>>>>>>>>>>

var (
	defaultMu    sync.RWMutex
	defaultStore Store
)

// SetDefaultStore installs the store used by generated Default constructors.
func SetDefaultStore(s Store) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = s
}

// DefaultStore returns the store installed with SetDefaultStore.
// It panics when none was installed.
func DefaultStore() Store {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultStore == nil {
		panic(ErrNoDefaultStore)
	}
	return defaultStore
}
