package gsettings

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/thorn-jmh/errorst"
)

// VariantType is a GVariant type string such as "i", "as" or "(ii)".
type VariantType string

const (
	TypeBool        VariantType = "b"
	TypeByte        VariantType = "y"
	TypeInt16       VariantType = "n"
	TypeUint16      VariantType = "q"
	TypeInt32       VariantType = "i"
	TypeUint32      VariantType = "u"
	TypeInt64       VariantType = "x"
	TypeUint64      VariantType = "t"
	TypeHandle      VariantType = "h"
	TypeDouble      VariantType = "d"
	TypeString      VariantType = "s"
	TypeObjectPath  VariantType = "o"
	TypeSignature   VariantType = "g"
	TypeStringArray VariantType = "as"
)

// IsBasic reports whether t is a single character basic type.
func (t VariantType) IsBasic() bool {
	if len(t) != 1 {
		return false
	}
	return strings.ContainsRune("bynqiuxthdsog", rune(t[0]))
}

// IsStringLike reports whether values of t are carried as Go strings.
func (t VariantType) IsStringLike() bool {
	return t == TypeString || t == TypeObjectPath || t == TypeSignature
}

func (t VariantType) IsArray() bool {
	return len(t) > 1 && t[0] == 'a'
}

// Elem returns the element type of an array type.
func (t VariantType) Elem() VariantType {
	if !t.IsArray() {
		return ""
	}
	return t[1:]
}

func (t VariantType) IsTuple() bool {
	return len(t) >= 2 && t[0] == '(' && t[len(t)-1] == ')'
}

// Items splits a tuple type into its member types.
func (t VariantType) Items() ([]VariantType, error) {
	if !t.IsTuple() {
		return nil, errorst.Wrap(ErrParse, "type %q is not a tuple", string(t))
	}
	body := string(t[1 : len(t)-1])
	var items []VariantType
	for body != "" {
		n, err := typeLen(body)
		if err != nil {
			return nil, errorst.Wrap(err, "invalid tuple type %q", string(t))
		}
		items = append(items, VariantType(body[:n]))
		body = body[n:]
	}
	return items, nil
}

// Validate checks that t is a complete type supported by this package.
func (t VariantType) Validate() error {
	n, err := typeLen(string(t))
	if err != nil {
		return err
	}
	if n != len(t) {
		return errorst.Wrap(ErrParse, "trailing characters in type %q", string(t))
	}
	return nil
}

// typeLen returns the length of the first complete type in s.
func typeLen(s string) (int, error) {
	if s == "" {
		return 0, errorst.Wrap(ErrParse, "empty type")
	}
	switch c := s[0]; {
	case VariantType(s[:1]).IsBasic():
		return 1, nil
	case c == 'a':
		n, err := typeLen(s[1:])
		if err != nil {
			return 0, err
		}
		return n + 1, nil
	case c == '(':
		i := 1
		for i < len(s) && s[i] != ')' {
			n, err := typeLen(s[i:])
			if err != nil {
				return 0, err
			}
			i += n
		}
		if i >= len(s) {
			return 0, errorst.Wrap(ErrParse, "unterminated tuple type %q", s)
		}
		return i + 1, nil
	default:
		return 0, errorst.Wrap(ErrParse, "unsupported type %q", s)
	}
}

// Variant is an immutable typed value.
//
// Values are kept in a canonical Go form: bool, uint8, int16, uint16,
// int32, uint32, int64, uint64, float64 and string for basic types,
// []string for arrays of strings, []any for other arrays and tuples.
type Variant struct {
	typ VariantType
	val any
}

func NewBool(v bool) Variant      { return Variant{typ: TypeBool, val: v} }
func NewInt32(v int32) Variant    { return Variant{typ: TypeInt32, val: v} }
func NewUint32(v uint32) Variant  { return Variant{typ: TypeUint32, val: v} }
func NewInt64(v int64) Variant    { return Variant{typ: TypeInt64, val: v} }
func NewUint64(v uint64) Variant  { return Variant{typ: TypeUint64, val: v} }
func NewDouble(v float64) Variant { return Variant{typ: TypeDouble, val: v} }
func NewString(v string) Variant  { return Variant{typ: TypeString, val: v} }
func NewStringArray(v []string) Variant {
	return Variant{typ: TypeStringArray, val: append([]string{}, v...)}
}

// NewVariant converts a Go value into a variant of type typ.
func NewVariant(typ VariantType, v any) (Variant, error) {
	if err := typ.Validate(); err != nil {
		return Variant{}, err
	}
	return encodeAs(typ, v)
}

func (v Variant) Type() VariantType { return v.typ }

// IsZero reports whether v is the zero Variant, which carries no type.
func (v Variant) IsZero() bool { return v.typ == "" }

// Value returns the canonical Go value.
func (v Variant) Value() any { return v.val }

func (v Variant) Bool() (bool, bool) {
	b, ok := v.val.(bool)
	return b, ok
}

func (v Variant) Str() (string, bool) {
	s, ok := v.val.(string)
	return s, ok
}

func (v Variant) Strv() ([]string, bool) {
	s, ok := v.val.([]string)
	if !ok {
		return nil, false
	}
	return append([]string{}, s...), true
}

func (v Variant) Equal(o Variant) bool {
	return v.typ == o.typ && reflect.DeepEqual(v.val, o.val)
}

// String prints v in GVariant text format; the output is accepted by ParseVariant.
func (v Variant) String() string {
	var b strings.Builder
	printValue(&b, v.typ, v.val, true)
	return b.String()
}

func printValue(b *strings.Builder, typ VariantType, val any, top bool) {
	switch {
	case typ == TypeBool:
		b.WriteString(strconv.FormatBool(val.(bool)))
	case typ == TypeDouble:
		b.WriteString(formatDouble(val.(float64)))
	case typ.IsStringLike():
		b.WriteString(quote(val.(string)))
	case typ.IsBasic():
		b.WriteString(formatInt(val))
	case typ.IsArray():
		items := arrayItems(val)
		if len(items) == 0 {
			if top {
				b.WriteString("@" + string(typ) + " ")
			}
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range items {
			if i > 0 {
				b.WriteString(", ")
			}
			printValue(b, typ.Elem(), item, false)
		}
		b.WriteByte(']')
	case typ.IsTuple():
		members, _ := typ.Items()
		items := val.([]any)
		b.WriteByte('(')
		for i, item := range items {
			if i > 0 {
				b.WriteString(", ")
			}
			printValue(b, members[i], item, false)
		}
		if len(items) == 1 {
			b.WriteByte(',')
		}
		b.WriteByte(')')
	}
}

func arrayItems(val any) []any {
	switch vs := val.(type) {
	case []string:
		items := make([]any, len(vs))
		for i, s := range vs {
			items[i] = s
		}
		return items
	case []any:
		return vs
	default:
		return nil
	}
}

func formatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatInt(val any) string {
	switch n := val.(type) {
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	default:
		return "0"
	}
}

func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}
	var b strings.Builder
	b.WriteByte(q)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r == rune(q) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte(q)
	return b.String()
}
