package schemas

import (
	"strings"

	"github.com/thorn-jmh/errorst"
)

type SignatureKind int

const (
	SignatureType SignatureKind = iota
	SignatureEnum
	SignatureFlags
)

func (k SignatureKind) String() string {
	switch k {
	case SignatureType:
		return "type"
	case SignatureEnum:
		return "enum"
	case SignatureFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// Signature is the discriminated type descriptor of a key: a GVariant type
// string, a reference to an enum or a reference to a flags definition.
// Signatures are comparable and can be used as map keys.
type Signature struct {
	Kind  SignatureKind
	Value string
}

// TypeSignature returns the signature of a plain GVariant type tag.
func TypeSignature(tag string) Signature {
	return Signature{Kind: SignatureType, Value: tag}
}

// EnumSignature returns the signature of a key referencing enum id.
func EnumSignature(id string) Signature {
	return Signature{Kind: SignatureEnum, Value: id}
}

// FlagsSignature returns the signature of a key referencing flags id.
func FlagsSignature(id string) Signature {
	return Signature{Kind: SignatureFlags, Value: id}
}

const (
	enumPrefix  = "enum:"
	flagsPrefix = "flags:"
)

// String renders the signature in the form accepted by ParseSignature.
func (s Signature) String() string {
	switch s.Kind {
	case SignatureEnum:
		return enumPrefix + s.Value
	case SignatureFlags:
		return flagsPrefix + s.Value
	default:
		return s.Value
	}
}

// ParseSignature parses "s", "enum:<id>" or "flags:<id>".
func ParseSignature(text string) (Signature, error) {
	text = strings.TrimSpace(text)
	var sig Signature
	switch {
	case strings.HasPrefix(text, enumPrefix):
		sig = EnumSignature(strings.TrimSpace(strings.TrimPrefix(text, enumPrefix)))
	case strings.HasPrefix(text, flagsPrefix):
		sig = FlagsSignature(strings.TrimSpace(strings.TrimPrefix(text, flagsPrefix)))
	default:
		sig = TypeSignature(text)
	}
	if sig.Value == "" {
		return Signature{}, errorst.Wrap(ErrInvalidSignature, "empty signature %q", text)
	}
	return sig, nil
}

// Signature returns the discriminated signature of the key.
// A key must declare exactly one of type, enum and flags.
func (k *Key) Signature() (Signature, error) {
	var found []Signature
	if k.Type != "" {
		found = append(found, TypeSignature(k.Type))
	}
	if k.Enum != "" {
		found = append(found, EnumSignature(k.Enum))
	}
	if k.Flags != "" {
		found = append(found, FlagsSignature(k.Flags))
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Signature{}, errorst.Wrap(ErrInvalidSignature,
			"expected one of `type`, `enum` or `flags` on key <%s>", k.Name)
	default:
		return Signature{}, errorst.Wrap(ErrInvalidSignature,
			"key <%s> declares more than one of `type`, `enum` and `flags`", k.Name)
	}
}

// Signatures returns the distinct signatures used by the schema keys.
func (s *Schema) Signatures() ([]Signature, error) {
	seen := make(map[Signature]bool)
	var sigs []Signature
	for _, k := range s.Keys {
		sig, err := k.Signature()
		if err != nil {
			return nil, err
		}
		if !seen[sig] {
			seen[sig] = true
			sigs = append(sigs, sig)
		}
	}
	return sigs, nil
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	sig, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = sig
	return nil
}
