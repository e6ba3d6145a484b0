package gsettings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// widget is a minimal property holder reporting changes synchronously.
type widget struct {
	mu       sync.Mutex
	props    map[string]any
	handlers map[string]map[int]func()
	next     int
}

func newWidget() *widget {
	return &widget{props: map[string]any{}, handlers: map[string]map[int]func(){}}
}

func (w *widget) Property(name string) (any, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.props[name], nil
}

func (w *widget) SetProperty(name string, value any) error {
	w.mu.Lock()
	w.props[name] = value
	var fs []func()
	for _, f := range w.handlers[name] {
		fs = append(fs, f)
	}
	w.mu.Unlock()

	for _, f := range fs {
		f()
	}
	return nil
}

func (w *widget) ConnectNotify(name string, f func()) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.handlers[name] == nil {
		w.handlers[name] = map[int]func(){}
	}
	id := w.next
	w.next++
	w.handlers[name][id] = f
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.handlers[name], id)
	}
}

// label has properties but cannot report their changes.
type label struct{ text any }

func (l *label) Property(string) (any, error) { return l.text, nil }

func (l *label) SetProperty(_ string, v any) error {
	l.text = v
	return nil
}

func TestBinding(t *testing.T) {
	t.Run("Should propagate both ways by default", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		w := newWidget()

		binding, err := s.Bind("width", w, "width-request").Build()
		require.NoError(t, err)
		defer binding.Unbind()

		got, _ := w.Property("width-request")
		assert.Equal(t, int32(600), got)
		sensitive, _ := w.Property(SensitiveProperty)
		assert.Equal(t, true, sensitive)

		require.NoError(t, Set(s, "width", int32(640)))
		got, _ = w.Property("width-request")
		assert.Equal(t, int32(640), got)

		require.NoError(t, w.SetProperty("width-request", 320))
		assert.Equal(t, int32(320), MustGet[int32](s, "width"))
	})

	t.Run("Should only read with Get", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		l := &label{}

		binding, err := s.Bind("name", l, "text").Get().Build()
		require.NoError(t, err)
		defer binding.Unbind()

		assert.Equal(t, "anon", l.text)
		require.NoError(t, Set(s, "name", "bob"))
		assert.Equal(t, "bob", l.text)
	})

	t.Run("Should require change reports to write back", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)

		_, err := s.Bind("name", &label{}, "text").Build()
		assert.ErrorIs(t, err, ErrNotBindable)
	})

	t.Run("Should invert booleans", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		w := newWidget()

		binding, err := s.Bind("dark", w, "light").InvertBoolean().Build()
		require.NoError(t, err)
		defer binding.Unbind()

		got, _ := w.Property("light")
		assert.Equal(t, true, got)

		require.NoError(t, w.SetProperty("light", true))
		assert.False(t, MustGet[bool](s, "dark"))
		require.NoError(t, w.SetProperty("light", false))
		assert.True(t, MustGet[bool](s, "dark"))

		_, err = s.Bind("width", w, "x").InvertBoolean().Build()
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("Should track writability", func(t *testing.T) {
		store := newTestStore(t)
		s := New(store, testSchemaID)
		w := newWidget()

		binding, err := s.Bind("width", w, "value").Build()
		require.NoError(t, err)
		defer binding.Unbind()

		require.NoError(t, store.Lock(testSchemaID, "width"))
		sensitive, _ := w.Property(SensitiveProperty)
		assert.Equal(t, false, sensitive)
	})

	t.Run("Should apply mappings", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		w := newWidget()

		binding, err := s.Bind("width", w, "label").
			Mapping(func(v Variant) (any, bool) {
				n, err := Decode[int32](v)
				return int(n) * 2, err == nil
			}).
			SetMapping(func(value any, typ VariantType) (Variant, bool) {
				n, ok := value.(int)
				return NewInt32(int32(n / 2)), ok
			}).
			Build()
		require.NoError(t, err)
		defer binding.Unbind()

		got, _ := w.Property("label")
		assert.Equal(t, 1200, got)

		require.NoError(t, w.SetProperty("label", 100))
		assert.Equal(t, int32(50), MustGet[int32](s, "width"))
	})

	t.Run("Should stop after Unbind", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		w := newWidget()

		binding := s.Bind("width", w, "value").MustBuild()
		binding.Unbind()
		binding.Unbind()

		require.NoError(t, Set(s, "width", int32(1)))
		got, _ := w.Property("value")
		assert.Equal(t, int32(600), got)

		require.NoError(t, w.SetProperty("value", 5))
		assert.Equal(t, int32(1), MustGet[int32](s, "width"))
	})
}

func TestAction(t *testing.T) {
	t.Run("Should toggle boolean keys", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		a := MustCreateAction(s, "dark")

		assert.Equal(t, "dark", a.Name())
		assert.Equal(t, VariantType(""), a.ParameterType())
		require.NoError(t, a.Activate(nil))
		assert.True(t, MustGet[bool](s, "dark"))

		state, err := a.State()
		require.NoError(t, err)
		assert.Equal(t, "true", state.String())
	})

	t.Run("Should set the key from the parameter", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		a := MustCreateAction(s, "mode")

		assert.Equal(t, TypeString, a.ParameterType())
		p := NewString("slow")
		require.NoError(t, a.Activate(&p))
		assert.Equal(t, "slow", MustGet[string](s, "mode"))

		assert.ErrorIs(t, a.Activate(nil), ErrTypeMismatch)
		assert.ErrorIs(t, a.ChangeState(NewInt32(1)), ErrTypeMismatch)
	})

	t.Run("Should be disabled on locked keys", func(t *testing.T) {
		store := newTestStore(t)
		s := New(store, testSchemaID)
		a := MustCreateAction(s, "dark")
		require.NoError(t, store.Lock(testSchemaID, "dark"))

		assert.False(t, a.Enabled())
		assert.ErrorIs(t, a.Activate(nil), ErrNotWritable)
	})

	t.Run("Should fail for unknown keys", func(t *testing.T) {
		s := New(newTestStore(t), testSchemaID)
		_, err := s.CreateAction("missing")
		assert.ErrorIs(t, err, ErrUnknownKey)
		assert.Panics(t, func() { MustCreateAction(s, "missing") })
	})
}
