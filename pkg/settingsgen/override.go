package settingsgen

import (
	"github.com/thorn-jmh/errorst"
	"go.uber.org/multierr"

	"gsgen/pkg/schemas"
)

// Directive is an override as the user writes it. Exactly one of Signature
// and KeyName selects the target. A directive defines custom types unless
// Skip is set.
type Directive struct {
	Signature string `koanf:"signature" yaml:"signature,omitempty"`
	KeyName   string `koanf:"key_name" yaml:"key_name,omitempty"`
	Skip      bool   `koanf:"skip" yaml:"skip,omitempty"`
	ArgType   string `koanf:"arg_type" yaml:"arg_type,omitempty"`
	RetType   string `koanf:"ret_type" yaml:"ret_type,omitempty"`
}

func (d Directive) target() string {
	if d.KeyName != "" {
		return "key <" + d.KeyName + ">"
	}
	return "signature <" + d.Signature + ">"
}

// Action is a validated directive.
type Action struct {
	Skip bool
	Arg  Type
	Ret  Type
}

// Overrides holds the validated directives of one schema. It is not
// modified after NewOverrides returns.
type Overrides struct {
	bySignature map[schemas.Signature]Action
	byKeyName   map[string]Action
}

// NewOverrides validates directives against sch. Every problem found is
// reported in the returned error.
func NewOverrides(sch *schemas.Schema, directives []Directive) (*Overrides, error) {
	// keys without a valid signature are reported when they are resolved
	used := make(map[schemas.Signature]bool, len(sch.Keys))
	for _, key := range sch.Keys {
		if sig, err := key.Signature(); err == nil {
			used[sig] = true
		}
	}

	o := &Overrides{
		bySignature: make(map[schemas.Signature]Action),
		byKeyName:   make(map[string]Action),
	}
	var errs error
	for i, d := range directives {
		action, err := newAction(d)
		if err != nil {
			errs = multierr.Append(errs, errorst.Wrap(err, "invalid override #%d for %s", i, d.target()))
			continue
		}

		if d.KeyName != "" {
			switch _, dup := o.byKeyName[d.KeyName]; {
			case sch.Key(d.KeyName) == nil:
				errs = multierr.Append(errs, errorst.Wrap(ErrUnknownKeyName, "override #%d targets key <%s> not in schema <%s>", i, d.KeyName, sch.ID))
			case dup:
				errs = multierr.Append(errs, errorst.Wrap(ErrDuplicateOverride, "override #%d targets key <%s> again", i, d.KeyName))
			default:
				o.byKeyName[d.KeyName] = action
			}
			continue
		}

		sig, err := schemas.ParseSignature(d.Signature)
		if err != nil {
			errs = multierr.Append(errs, errorst.Wrap(err, "invalid override #%d", i))
			continue
		}
		switch _, dup := o.bySignature[sig]; {
		case !used[sig]:
			errs = multierr.Append(errs, errorst.Wrap(ErrUselessOverride, "override #%d targets signature <%s> which no key of schema <%s> uses", i, sig, sch.ID))
		case dup:
			errs = multierr.Append(errs, errorst.Wrap(ErrDuplicateOverride, "override #%d targets signature <%s> again", i, sig))
		default:
			o.bySignature[sig] = action
		}
	}
	if errs != nil {
		return nil, errs
	}
	return o, nil
}

func newAction(d Directive) (Action, error) {
	if (d.Signature == "") == (d.KeyName == "") {
		return Action{}, errorst.Wrap(ErrTargetMode, "signature %q, key_name %q", d.Signature, d.KeyName)
	}
	if d.Skip {
		return Action{Skip: true}, nil
	}
	if d.ArgType == "" || d.RetType == "" {
		return Action{}, errorst.Wrap(ErrMissingType, "arg_type %q, ret_type %q", d.ArgType, d.RetType)
	}

	var errs error
	arg, err := ParseType(d.ArgType)
	errs = multierr.Append(errs, err)
	ret, err := ParseType(d.RetType)
	errs = multierr.Append(errs, err)
	if errs != nil {
		return Action{}, errs
	}
	return Action{Arg: arg, Ret: ret}, nil
}

// Lookup returns the action for a key, key name first. A nil Overrides has
// no actions.
func (o *Overrides) Lookup(keyName string, sig schemas.Signature) (Action, Origin, bool) {
	if o == nil {
		return Action{}, "", false
	}
	if action, ok := o.byKeyName[keyName]; ok {
		return action, OriginKeyName, true
	}
	if action, ok := o.bySignature[sig]; ok {
		return action, OriginSignature, true
	}
	return Action{}, "", false
}

// Len returns the number of actions.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.bySignature) + len(o.byKeyName)
}
