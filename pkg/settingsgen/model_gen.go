package settingsgen

import (
	"go/token"
	"regexp"
	"strings"

	"github.com/thorn-jmh/errorst"

	"gsgen/pkg/schemas"
)

// >>>>>>>>>>>> this used to describe the result of accessor generation >>>>>>>>>>>>>>>

// Unit is everything generated for one schema.
type Unit struct {
	SchemaID string `yaml:"schema_id"`
	TypeName string `yaml:"type_name"`
	// Default selects the constructor taking only a store.
	Default   bool        `yaml:"default"`
	Accessors []*Accessor `yaml:"accessors"`
	AuxTypes  []*AuxType  `yaml:"aux_types,omitempty"`
}

// Accessor is one resolved key and the types of its accessor family.
type Accessor struct {
	Key       string            `yaml:"key"`   // literal key name
	Name      string            `yaml:"name"`  // Go method stem, e.g. WindowWidth
	Ident     string            `yaml:"ident"` // snake case, e.g. window_width
	Signature schemas.Signature `yaml:"signature"`
	Arg       Type              `yaml:"arg"`
	Ret       Type              `yaml:"ret"`
	Doc       Doc               `yaml:"doc"`
	// Origin tells which rule produced the types.
	Origin Origin       `yaml:"origin"`
	Aux    *AuxType     `yaml:"-"`
	Source *schemas.Key `yaml:"-"`
}

// Doc is the documentation carried over from the schema.
type Doc struct {
	Summary     string         `yaml:"summary,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Default     string         `yaml:"default,omitempty"`
	Range       *schemas.Range `yaml:"range,omitempty"`
}

// Methods returns the Go method names of the accessor family.
func (a *Accessor) Methods() []string {
	return []string{
		a.Name,
		"Set" + a.Name,
		"TrySet" + a.Name,
		"Connect" + a.Name + "Changed",
		"Bind" + a.Name,
		"Create" + a.Name + "Action",
		a.Name + "DefaultValue",
		"Reset" + a.Name,
	}
}

type Origin string

const (
	OriginBuiltin   Origin = "builtin"
	OriginSignature Origin = "signature-override"
	OriginKeyName   Origin = "key-name-override"
	OriginAux       Origin = "aux"
)

// >>>>>>>>>>>> aux types >>>>>>>>>>>>>>>

type AuxKind int

const (
	AuxEnum AuxKind = iota
	AuxFlags
)

func (k AuxKind) String() string {
	if k == AuxFlags {
		return "flags"
	}
	return "enum"
}

func (k AuxKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AuxScope is the namespace an aux type id lives in.
type AuxScope string

const (
	ScopeKey   AuxScope = "key"
	ScopeEnum  AuxScope = "enum"
	ScopeFlags AuxScope = "flags"
)

// AuxType is a synthesized enum or bit set type.
type AuxType struct {
	Kind     AuxKind  `yaml:"kind"`
	Scope    AuxScope `yaml:"scope"`
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Members  []Member `yaml:"members"`
	WireType string   `yaml:"wire_type"`
}

// Member is one nick of an aux type.
type Member struct {
	Nick  string `yaml:"nick"`
	Ident string `yaml:"ident"`
	// Value is the discriminant of enums or the bit value of flags.
	Value int64 `yaml:"value"`
}

// Member returns the member with the given nick.
func (a *AuxType) Member(nick string) (Member, bool) {
	for _, m := range a.Members {
		if m.Nick == nick {
			return m, true
		}
	}
	return Member{}, false
}

// Idents returns the package level identifiers the aux type declares.
func (a *AuxType) Idents() []string {
	idents := []string{a.Name, "Parse" + a.Name}
	for _, m := range a.Members {
		idents = append(idents, m.Ident)
	}
	return idents
}

// >>>>>>>>>>>> go types >>>>>>>>>>>>>>>

// Type is a Go type expression: modifiers applied to a named type.
type Type struct {
	Name      string   // type name
	Domain    string   // package path, empty for builtins and local types
	Modifiers []string // "*", "[]" or "[N]", outermost first
}

var arrayModifier = regexp.MustCompile(`^\[[0-9]+\]`)

// ParseType parses expressions like "int32", "[]string", "*time.Duration"
// or "[2]github.com/x/geom.Point".
func ParseType(expr string) (Type, error) {
	var typ Type
	rest := strings.TrimSpace(expr)
	for {
		switch {
		case strings.HasPrefix(rest, "*"):
			typ.Modifiers = append(typ.Modifiers, "*")
			rest = rest[1:]
			continue
		case strings.HasPrefix(rest, "[]"):
			typ.Modifiers = append(typ.Modifiers, "[]")
			rest = rest[2:]
			continue
		case arrayModifier.MatchString(rest):
			m := arrayModifier.FindString(rest)
			typ.Modifiers = append(typ.Modifiers, m)
			rest = rest[len(m):]
			continue
		}
		break
	}

	if i := strings.LastIndex(rest, "."); i >= 0 {
		typ.Domain, typ.Name = rest[:i], rest[i+1:]
		if typ.Domain == "" || strings.ContainsAny(typ.Domain, " \t[]*") {
			return Type{}, errorst.Wrap(ErrInvalidType, "invalid package path in %q", expr)
		}
	} else {
		typ.Name = rest
	}
	if !token.IsIdentifier(typ.Name) {
		return Type{}, errorst.Wrap(ErrInvalidType, "invalid type name in %q", expr)
	}
	return typ, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(expr string) Type {
	typ, err := ParseType(expr)
	if err != nil {
		panic(err)
	}
	return typ
}

func (t Type) String() string {
	s := strings.Join(t.Modifiers, "")
	if t.Domain != "" {
		s += t.Domain + "."
	}
	return s + t.Name
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t Type) IsZero() bool {
	return t.Name == ""
}
