package gsettings

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/thorn-jmh/errorst"
)

// typeKeywords are the GVariant text format casts, e.g. "uint32 7".
var typeKeywords = map[string]VariantType{
	"boolean":    TypeBool,
	"byte":       TypeByte,
	"int16":      TypeInt16,
	"uint16":     TypeUint16,
	"int32":      TypeInt32,
	"uint32":     TypeUint32,
	"int64":      TypeInt64,
	"uint64":     TypeUint64,
	"handle":     TypeHandle,
	"double":     TypeDouble,
	"string":     TypeString,
	"objectpath": TypeObjectPath,
	"signature":  TypeSignature,
}

// ParseVariant parses text in GVariant text format as a value of type typ.
// Only the subset used by schema defaults is understood: booleans, numbers,
// strings, arrays and tuples, with optional "@type" annotations.
func ParseVariant(typ VariantType, text string) (Variant, error) {
	if err := typ.Validate(); err != nil {
		return Variant{}, err
	}

	p := &parser{src: text}
	val, err := p.value(typ)
	if err != nil {
		return Variant{}, errorst.Wrap(err, "failed to parse %q as <%s>", text, string(typ))
	}
	p.skipSpace()
	if !p.eof() {
		return Variant{}, errorst.Wrap(ErrParse, "trailing characters at offset %d in %q", p.pos, text)
	}
	return Variant{typ: typ, val: val}, nil
}

// MustParseVariant is like ParseVariant but panics on error.
func MustParseVariant(typ VariantType, text string) Variant {
	v, err := ParseVariant(typ, text)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && strings.IndexByte(" \t\r\n", p.peek()) >= 0 {
		p.pos++
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return errorst.Wrap(ErrParse, "expected %q at offset %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

// word reads a run of characters that may form a number, keyword or type.
func (p *parser) word() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if c == ',' || c == ']' || c == ')' || c == '[' || c == '(' ||
			strings.IndexByte(" \t\r\n", c) >= 0 {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

// annotation consumes an optional "@type" prefix or a type keyword cast.
func (p *parser) annotation(typ VariantType) error {
	p.skipSpace()
	if p.peek() == '@' {
		p.pos++
		start := p.pos
		for !p.eof() && strings.IndexByte(" \t\r\n", p.peek()) < 0 {
			p.pos++
		}
		if got := VariantType(p.src[start:p.pos]); got != typ {
			return errorst.Wrap(ErrParse, "annotated type <%s> does not match <%s>", string(got), string(typ))
		}
		p.skipSpace()
		return nil
	}

	save := p.pos
	w := p.word()
	if kt, ok := typeKeywords[w]; ok && !p.eof() && strings.IndexByte(" \t", p.peek()) >= 0 {
		if kt != typ {
			return errorst.Wrap(ErrParse, "cast %q does not match <%s>", w, string(typ))
		}
		p.skipSpace()
		return nil
	}
	p.pos = save
	return nil
}

func (p *parser) value(typ VariantType) (any, error) {
	if err := p.annotation(typ); err != nil {
		return nil, err
	}
	p.skipSpace()

	switch {
	case typ == TypeBool:
		switch w := p.word(); w {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, errorst.Wrap(ErrParse, "invalid boolean %q", w)
		}
	case typ == TypeDouble:
		w := p.word()
		f, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, errorst.Wrap(ErrParse, "invalid double %q", w)
		}
		return f, nil
	case typ.IsStringLike():
		return p.quoted()
	case typ.IsBasic():
		return p.integer(typ)
	case typ.IsArray():
		return p.array(typ.Elem())
	case typ.IsTuple():
		return p.tuple(typ)
	default:
		return nil, errorst.Wrap(ErrParse, "unsupported type <%s>", string(typ))
	}
}

func (p *parser) integer(typ VariantType) (any, error) {
	w := p.word()
	invalid := func() error {
		return errorst.Wrap(ErrParse, "invalid <%s> value %q", string(typ), w)
	}
	switch typ {
	case TypeByte:
		n, err := strconv.ParseUint(w, 0, 8)
		if err != nil {
			return nil, invalid()
		}
		return uint8(n), nil
	case TypeInt16:
		n, err := strconv.ParseInt(w, 0, 16)
		if err != nil {
			return nil, invalid()
		}
		return int16(n), nil
	case TypeUint16:
		n, err := strconv.ParseUint(w, 0, 16)
		if err != nil {
			return nil, invalid()
		}
		return uint16(n), nil
	case TypeInt32, TypeHandle:
		n, err := strconv.ParseInt(w, 0, 32)
		if err != nil {
			return nil, invalid()
		}
		return int32(n), nil
	case TypeUint32:
		n, err := strconv.ParseUint(w, 0, 32)
		if err != nil {
			return nil, invalid()
		}
		return uint32(n), nil
	case TypeInt64:
		n, err := strconv.ParseInt(w, 0, 64)
		if err != nil {
			return nil, invalid()
		}
		return n, nil
	case TypeUint64:
		n, err := strconv.ParseUint(w, 0, 64)
		if err != nil {
			return nil, invalid()
		}
		return n, nil
	}
	return nil, invalid()
}

func (p *parser) quoted() (string, error) {
	q := p.peek()
	if q != '\'' && q != '"' {
		return "", errorst.Wrap(ErrParse, "expected string at offset %d", p.pos)
	}
	p.pos++

	var b strings.Builder
	for {
		if p.eof() {
			return "", errorst.Wrap(ErrParse, "unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == q:
			p.pos++
			return b.String(), nil
		case c == '\\':
			p.pos++
			if p.eof() {
				return "", errorst.Wrap(ErrParse, "unterminated escape")
			}
			e := p.src[p.pos]
			p.pos++
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case 'u', 'U':
				size := 4
				if e == 'U' {
					size = 8
				}
				if p.pos+size > len(p.src) {
					return "", errorst.Wrap(ErrParse, "short unicode escape")
				}
				n, err := strconv.ParseUint(p.src[p.pos:p.pos+size], 16, 32)
				if err != nil {
					return "", errorst.Wrap(ErrParse, "invalid unicode escape")
				}
				p.pos += size
				b.WriteRune(rune(n))
			default:
				b.WriteByte(e)
			}
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) array(elem VariantType) (any, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}

	var items []any
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return canonicalArray(elem, items), nil
	}
	for {
		item, err := p.value(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return canonicalArray(elem, items), nil
		default:
			return nil, errorst.Wrap(ErrParse, "expected ',' or ']' at offset %d", p.pos)
		}
	}
}

func (p *parser) tuple(typ VariantType) (any, error) {
	members, err := typ.Items()
	if err != nil {
		return nil, err
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}

	items := make([]any, 0, len(members))
	for i, member := range members {
		item, err := p.value(member)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpace()
		if i < len(members)-1 || p.peek() == ',' {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return items, nil
}

// canonicalArray stores string arrays as []string and everything else as []any.
func canonicalArray(elem VariantType, items []any) any {
	if elem.IsStringLike() {
		strs := make([]string, len(items))
		for i, item := range items {
			strs[i] = item.(string)
		}
		return strs
	}
	if items == nil {
		return []any{}
	}
	return items
}
