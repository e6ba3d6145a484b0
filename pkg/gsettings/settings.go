package gsettings

import (
	"fmt"

	"github.com/thorn-jmh/errorst"
)

// Settings is a handle on one schema of a store. Generated accessor types
// embed it.
type Settings struct {
	store    Store
	schemaID string
}

// New returns a handle on schemaID. Unknown schemas surface on first use.
func New(store Store, schemaID string) *Settings {
	return &Settings{store: store, schemaID: schemaID}
}

func (s *Settings) SchemaID() string { return s.schemaID }

func (s *Settings) Store() Store { return s.store }

// Value returns the current value of key.
func (s *Settings) Value(key string) (Variant, error) {
	return s.store.Value(s.schemaID, key)
}

// SetValue writes key. It fails with ErrNotWritable on locked keys.
func (s *Settings) SetValue(key string, v Variant) error {
	return s.store.SetValue(s.schemaID, key, v)
}

// DefaultValue returns the schema default of key.
func (s *Settings) DefaultValue(key string) (Variant, error) {
	info, err := s.store.Key(s.schemaID, key)
	if err != nil {
		return Variant{}, err
	}
	return info.Default, nil
}

// Reset restores key to its schema default.
func (s *Settings) Reset(key string) error {
	return s.store.Reset(s.schemaID, key)
}

func (s *Settings) IsWritable(key string) bool {
	return s.store.Writable(s.schemaID, key)
}

// ConnectChanged calls f after every committed write or reset of key.
// An empty key watches every key of the schema.
func (s *Settings) ConnectChanged(key string, f func(key string)) *Subscription {
	return s.store.Subscribe(s.schemaID, key, func(change Change) {
		if change.Type == ChangeWritable {
			return
		}
		f(change.Key)
	})
}

// ConnectWritableChanged calls f when key is locked or unlocked.
func (s *Settings) ConnectWritableChanged(key string, f func(key string)) *Subscription {
	return s.store.Subscribe(s.schemaID, key, func(change Change) {
		if change.Type == ChangeWritable {
			f(change.Key)
		}
	})
}

// >>>>>>>>>>>>>>>>>>>> typed access >>>>>>>>>>>>>>>>>>>>>>>

// Get returns the current value of key decoded as T.
func Get[T any](s *Settings, key string) (T, error) {
	v, err := s.Value(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](v)
}

// MustGet is like Get but panics naming the key on failure.
func MustGet[T any](s *Settings, key string) T {
	v, err := Get[T](s, key)
	if err != nil {
		panic(fmt.Sprintf("failed to get value for key `%s`: %v", key, err))
	}
	return v
}

// Set encodes value with the type of key and writes it.
func Set[T any](s *Settings, key string, value T) error {
	info, err := s.store.Key(s.schemaID, key)
	if err != nil {
		return err
	}
	v, err := Encode(info.Type, value)
	if err != nil {
		return errorst.Wrap(err, "key <%s>", key)
	}
	return s.SetValue(key, v)
}

// MustSet is like Set but panics naming the key on failure.
func MustSet[T any](s *Settings, key string, value T) {
	if err := Set(s, key, value); err != nil {
		panic(fmt.Sprintf("failed to set value for key `%s`: %v", key, err))
	}
}

// GetDefault returns the schema default of key decoded as T.
func GetDefault[T any](s *Settings, key string) (T, error) {
	v, err := s.DefaultValue(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](v)
}

// MustDefault is like GetDefault but panics naming the key on failure.
func MustDefault[T any](s *Settings, key string) T {
	v, err := GetDefault[T](s, key)
	if err != nil {
		panic(fmt.Sprintf("failed to get default value for key `%s`: %v", key, err))
	}
	return v
}

// MustReset resets key and panics naming the key on failure.
func MustReset(s *Settings, key string) {
	if err := s.Reset(key); err != nil {
		panic(fmt.Sprintf("failed to reset key `%s`: %v", key, err))
	}
}
