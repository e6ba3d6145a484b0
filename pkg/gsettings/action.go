package gsettings

import (
	"fmt"

	"github.com/thorn-jmh/errorst"
)

// Action is a stateful action backed by a key. Its state is the key value;
// activating it writes the key. Boolean keys toggle when activated
// without a parameter.
type Action struct {
	settings *Settings
	key      string
	info     *KeyInfo
}

// CreateAction returns an action named after key.
func (s *Settings) CreateAction(key string) (*Action, error) {
	info, err := s.store.Key(s.schemaID, key)
	if err != nil {
		return nil, err
	}
	return &Action{settings: s, key: key, info: info}, nil
}

// MustCreateAction is like CreateAction but panics naming the key on failure.
func MustCreateAction(s *Settings, key string) *Action {
	a, err := s.CreateAction(key)
	if err != nil {
		panic(fmt.Sprintf("failed to create action for key `%s`: %v", key, err))
	}
	return a
}

func (a *Action) Name() string { return a.key }

// ParameterType is empty for boolean keys and the key type otherwise.
func (a *Action) ParameterType() VariantType {
	if a.info.Type == TypeBool {
		return ""
	}
	return a.info.Type
}

func (a *Action) StateType() VariantType { return a.info.Type }

// State returns the current key value.
func (a *Action) State() (Variant, error) {
	return a.settings.Value(a.key)
}

// Enabled reports whether the backing key is writable.
func (a *Action) Enabled() bool {
	return a.settings.IsWritable(a.key)
}

// Activate writes param to the key, or toggles a boolean key when param is nil.
func (a *Action) Activate(param *Variant) error {
	if !a.Enabled() {
		return errorst.Wrap(ErrNotWritable, "action %q is disabled", a.key)
	}

	if param == nil {
		if a.info.Type != TypeBool {
			return errorst.Wrap(ErrTypeMismatch, "action %q expects a <%s> parameter", a.key, string(a.info.Type))
		}
		state, err := a.State()
		if err != nil {
			return err
		}
		on, _ := state.Bool()
		return a.settings.SetValue(a.key, NewBool(!on))
	}

	if param.Type() != a.info.Type {
		return errorst.Wrap(ErrTypeMismatch, "action %q expects <%s>, got <%s>", a.key, string(a.info.Type), string(param.Type()))
	}
	return a.settings.SetValue(a.key, *param)
}

// ChangeState is an alias of Activate with a mandatory value.
func (a *Action) ChangeState(v Variant) error {
	return a.Activate(&v)
}
