package settingsgen

import (
	"github.com/thorn-jmh/errorst"

	"gsgen/pkg/schemas"
)

type Outcome int

const (
	Resolved Outcome = iota
	Skipped
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Resolution is the decision taken for one key.
type Resolution struct {
	Outcome Outcome
	Arg     Type
	Ret     Type
	Origin  Origin
	Aux     *AuxType // set for enum, flags and choice keys
}

// Builtin returns the default Go types of a plain type tag.
func Builtin(tag string) (arg, ret Type, ok bool) {
	var typ Type
	switch tag {
	case "b":
		typ = Type{Name: "bool"}
	case "i":
		typ = Type{Name: "int32"}
	case "u":
		typ = Type{Name: "uint32"}
	case "x":
		typ = Type{Name: "int64"}
	case "t":
		typ = Type{Name: "uint64"}
	case "d":
		typ = Type{Name: "float64"}
	case "s":
		typ = Type{Name: "string"}
	case "as":
		typ = Type{Name: "string", Modifiers: []string{"[]"}}
	case "(ii)":
		typ = Type{Name: "int32", Modifiers: []string{"[2]"}}
	default:
		return Type{}, Type{}, false
	}
	return typ, typ, true
}

// Resolve decides the types of ctx.Key. A key name override wins over a
// signature override, which wins over ResolveDefault.
func Resolve(ctx Context) (Resolution, error) {
	if action, origin, ok := ctx.Overrides.Lookup(ctx.Key.Name, ctx.Signature); ok {
		if action.Skip {
			return Resolution{Outcome: Skipped, Origin: origin}, nil
		}
		return Resolution{Outcome: Resolved, Arg: action.Arg, Ret: action.Ret, Origin: origin}, nil
	}
	return ResolveDefault(ctx.List, ctx.Key, ctx.Signature)
}

// ResolveDefault maps a signature to its types without looking at overrides.
// Choice keys, enum references and flags references get an aux type.
func ResolveDefault(list *schemas.SchemaList, key *schemas.Key, sig schemas.Signature) (Resolution, error) {
	var (
		aux *AuxType
		err error
	)
	switch sig.Kind {
	case schemas.SignatureType:
		if sig.Value != "s" || !key.HasChoices() {
			arg, ret, ok := Builtin(sig.Value)
			if !ok {
				return Resolution{Outcome: Unknown}, nil
			}
			return Resolution{Outcome: Resolved, Arg: arg, Ret: ret, Origin: OriginBuiltin}, nil
		}
		aux, err = EnumFromChoices(key)
	case schemas.SignatureEnum:
		var enum *schemas.Enum
		if enum, err = list.Enum(sig.Value); err == nil {
			aux, err = EnumFromDef(enum)
		}
	case schemas.SignatureFlags:
		var flags *schemas.Flag
		if flags, err = list.Flag(sig.Value); err == nil {
			aux, err = FlagsFromDef(flags)
		}
	default:
		return Resolution{Outcome: Unknown}, nil
	}
	if err != nil {
		return Resolution{}, errorst.Wrap(err, "failed to synthesize type of key <%s>", key.Name)
	}

	typ := Type{Name: aux.Name}
	return Resolution{Outcome: Resolved, Arg: typ, Ret: typ, Origin: OriginAux, Aux: aux}, nil
}
