package gsettings

import (
	"sync"
	"sync/atomic"

	"github.com/thorn-jmh/errorst"
)

// Object is anything with named properties a key can be bound to.
type Object interface {
	Property(name string) (any, error)
	SetProperty(name string, value any) error
}

// PropertyNotifier is implemented by objects that report property changes.
// It is required for bindings that write back to the settings.
type PropertyNotifier interface {
	ConnectNotify(name string, f func()) (disconnect func())
}

// BindFlags selects the direction and behaviour of a binding.
type BindFlags uint

const (
	// BindGet copies settings changes to the property.
	BindGet BindFlags = 1 << iota
	// BindSet copies property changes to the settings.
	BindSet
	// BindNoSensitivity leaves the "sensitive" property alone.
	BindNoSensitivity
	// BindGetNoChanges copies the value once and ignores later changes.
	BindGetNoChanges
	// BindInvertBoolean negates boolean values in both directions.
	BindInvertBoolean
)

// BindDefault is equivalent to BindGet|BindSet.
const BindDefault BindFlags = 0

// SensitiveProperty is kept in sync with the writability of bound keys
// unless BindNoSensitivity is given.
const SensitiveProperty = "sensitive"

// BindingBuilder configures a binding between a key and an object property.
// Nothing happens until Build is called.
type BindingBuilder struct {
	settings *Settings
	key      string
	object   Object
	property string
	flags    BindFlags

	getMapping func(Variant) (any, bool)
	setMapping func(any, VariantType) (Variant, bool)
}

// Bind starts a binding of key to the property prop of obj.
func (s *Settings) Bind(key string, obj Object, prop string) *BindingBuilder {
	return &BindingBuilder{
		settings: s,
		key:      key,
		object:   obj,
		property: prop,
	}
}

func (b *BindingBuilder) Flags(flags BindFlags) *BindingBuilder {
	b.flags = flags
	return b
}

// Get restricts the binding to the settings to property direction.
func (b *BindingBuilder) Get() *BindingBuilder {
	b.flags |= BindGet
	return b
}

// Set restricts the binding to the property to settings direction.
func (b *BindingBuilder) Set() *BindingBuilder {
	b.flags |= BindSet
	return b
}

func (b *BindingBuilder) GetNoChanges() *BindingBuilder {
	b.flags |= BindGetNoChanges
	return b
}

func (b *BindingBuilder) InvertBoolean() *BindingBuilder {
	b.flags |= BindInvertBoolean
	return b
}

func (b *BindingBuilder) NoSensitivity() *BindingBuilder {
	b.flags |= BindNoSensitivity
	return b
}

// Mapping converts settings values before they reach the property.
// Returning false skips the update.
func (b *BindingBuilder) Mapping(f func(Variant) (any, bool)) *BindingBuilder {
	b.getMapping = f
	return b
}

// SetMapping converts property values into variants of the key type.
// Returning false skips the update.
func (b *BindingBuilder) SetMapping(f func(value any, typ VariantType) (Variant, bool)) *BindingBuilder {
	b.setMapping = f
	return b
}

// Binding is an active binding. Unbind stops it.
type Binding struct {
	once     sync.Once
	teardown []func()
}

func (b *Binding) Unbind() {
	b.once.Do(func() {
		for _, f := range b.teardown {
			f()
		}
	})
}

// Build validates the configuration, copies the current value to the
// property and starts tracking changes.
func (b *BindingBuilder) Build() (*Binding, error) {
	info, err := b.settings.store.Key(b.settings.schemaID, b.key)
	if err != nil {
		return nil, err
	}

	flags := b.flags
	if flags&(BindGet|BindSet) == 0 {
		flags |= BindGet | BindSet
	}
	if flags&BindInvertBoolean != 0 && info.Type != TypeBool {
		return nil, errorst.Wrap(ErrTypeMismatch, "cannot invert non boolean key <%s>", b.key)
	}

	var notifier PropertyNotifier
	if flags&BindSet != 0 {
		var ok bool
		if notifier, ok = b.object.(PropertyNotifier); !ok {
			return nil, errorst.Wrap(ErrNotBindable, "object %T does not report changes of %q", b.object, b.property)
		}
	}

	binding := &Binding{}
	// guards against a property write echoing back as a settings write
	var updating atomic.Bool

	if flags&BindGet != 0 {
		if err := b.copyToProperty(&updating, flags); err != nil {
			return nil, err
		}
		if flags&BindGetNoChanges == 0 {
			sub := b.settings.ConnectChanged(b.key, func(string) {
				_ = b.copyToProperty(&updating, flags)
			})
			binding.teardown = append(binding.teardown, sub.Unsubscribe)
		}
	}

	if flags&BindSet != 0 {
		if flags&BindNoSensitivity == 0 {
			_ = b.object.SetProperty(SensitiveProperty, b.settings.IsWritable(b.key))
			sub := b.settings.ConnectWritableChanged(b.key, func(string) {
				_ = b.object.SetProperty(SensitiveProperty, b.settings.IsWritable(b.key))
			})
			binding.teardown = append(binding.teardown, sub.Unsubscribe)
		}
		disconnect := notifier.ConnectNotify(b.property, func() {
			if updating.Load() {
				return
			}
			_ = b.copyToSettings(info.Type, flags)
		})
		binding.teardown = append(binding.teardown, disconnect)
	}

	return binding, nil
}

// MustBuild is like Build but panics on error.
func (b *BindingBuilder) MustBuild() *Binding {
	binding, err := b.Build()
	if err != nil {
		panic(err)
	}
	return binding
}

func (b *BindingBuilder) copyToProperty(updating *atomic.Bool, flags BindFlags) error {
	v, err := b.settings.Value(b.key)
	if err != nil {
		return err
	}

	var value any
	switch {
	case b.getMapping != nil:
		var ok bool
		if value, ok = b.getMapping(v); !ok {
			return nil
		}
	case flags&BindInvertBoolean != 0:
		on, _ := v.Bool()
		value = !on
	default:
		value = v.Value()
	}

	updating.Store(true)
	defer updating.Store(false)
	if err := b.object.SetProperty(b.property, value); err != nil {
		return errorst.Wrap(err, "failed to set property %q from key <%s>", b.property, b.key)
	}
	return nil
}

func (b *BindingBuilder) copyToSettings(typ VariantType, flags BindFlags) error {
	value, err := b.object.Property(b.property)
	if err != nil {
		return errorst.Wrap(err, "failed to read property %q", b.property)
	}

	var v Variant
	switch {
	case b.setMapping != nil:
		var ok bool
		if v, ok = b.setMapping(value, typ); !ok {
			return nil
		}
	case flags&BindInvertBoolean != 0:
		on, ok := value.(bool)
		if !ok {
			return errorst.Wrap(ErrTypeMismatch, "property %q is %T, not bool", b.property, value)
		}
		v = NewBool(!on)
	default:
		if v, err = encodeAs(typ, value); err != nil {
			return err
		}
	}
	return b.settings.SetValue(b.key, v)
}
