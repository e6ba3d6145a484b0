package gsettings

import (
	"reflect"

	"github.com/thorn-jmh/errorst"
)

// VariantEncoder is implemented by types that know their variant form,
// such as generated enums and flags.
type VariantEncoder interface {
	ToVariant() Variant
}

// VariantDecoder is implemented by pointer receivers that can load
// themselves from a variant. Implementations must not panic.
type VariantDecoder interface {
	FromVariant(v Variant) error
}

// StaticTyped is implemented by types with a fixed variant type.
type StaticTyped interface {
	StaticVariantType() VariantType
}

var (
	encoderType = reflect.TypeOf((*VariantEncoder)(nil)).Elem()
	decoderType = reflect.TypeOf((*VariantDecoder)(nil)).Elem()
	variantType = reflect.TypeOf(Variant{})
)

// Encode converts value into a variant of type typ. Values implementing
// VariantEncoder are used as is, other values are converted by kind, so a
// time.Duration encodes as "x" and a [2]int32 as "(ii)".
func Encode[T any](typ VariantType, value T) (Variant, error) {
	return encodeAs(typ, value)
}

// Decode converts v into a T.
func Decode[T any](v Variant) (T, error) {
	var out T
	if err := decodeInto(v, reflect.ValueOf(&out).Elem()); err != nil {
		return out, err
	}
	return out, nil
}

func encodeAs(typ VariantType, value any) (Variant, error) {
	val, err := toCanonical(typ, reflect.ValueOf(value))
	if err != nil {
		return Variant{}, errorst.Wrap(err, "cannot encode %T as <%s>", value, string(typ))
	}
	return Variant{typ: typ, val: val}, nil
}

func decodeInto(v Variant, rv reflect.Value) error {
	if v.IsZero() {
		return errorst.Wrap(ErrDecode, "empty variant")
	}
	if err := fromCanonical(v.typ, v.val, rv); err != nil {
		return errorst.Wrap(err, "cannot decode <%s> into %s", string(v.typ), rv.Type())
	}
	return nil
}

// >>>>>>>>>>>>>>>>>>>> go value -> canonical >>>>>>>>>>>>>>>>>>>>>>>

func toCanonical(typ VariantType, rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, errorst.Wrap(ErrTypeMismatch, "nil value")
	}

	if rv.Type() == variantType {
		inner := rv.Interface().(Variant)
		if inner.typ != typ {
			return nil, errorst.Wrap(ErrTypeMismatch, "variant of type <%s>", string(inner.typ))
		}
		return inner.val, nil
	}
	if rv.Type().Implements(encoderType) {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, errorst.Wrap(ErrTypeMismatch, "nil %s", rv.Type())
		}
		inner := rv.Interface().(VariantEncoder).ToVariant()
		if inner.typ != typ {
			return nil, errorst.Wrap(ErrTypeMismatch, "%s encodes as <%s>", rv.Type(), string(inner.typ))
		}
		return inner.val, nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, errorst.Wrap(ErrTypeMismatch, "nil %s", rv.Type())
		}
		return toCanonical(typ, rv.Elem())
	}

	mismatch := func() error {
		return errorst.Wrap(ErrTypeMismatch, "%s is not compatible", rv.Type())
	}

	switch {
	case typ == TypeBool:
		if rv.Kind() != reflect.Bool {
			return nil, mismatch()
		}
		return rv.Bool(), nil
	case typ == TypeDouble:
		if rv.Kind() != reflect.Float32 && rv.Kind() != reflect.Float64 {
			return nil, mismatch()
		}
		return rv.Float(), nil
	case typ.IsStringLike():
		if rv.Kind() != reflect.String {
			return nil, mismatch()
		}
		return rv.String(), nil
	case typ.IsBasic():
		return integerToCanonical(typ, rv)
	case typ.IsArray():
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, mismatch()
		}
		items := make([]any, rv.Len())
		for i := range items {
			item, err := toCanonical(typ.Elem(), rv.Index(i))
			if err != nil {
				return nil, errorst.Wrap(err, "element %d", i)
			}
			items[i] = item
		}
		return canonicalArray(typ.Elem(), items), nil
	case typ.IsTuple():
		members, err := typ.Items()
		if err != nil {
			return nil, err
		}
		var fields []reflect.Value
		switch rv.Kind() {
		case reflect.Array, reflect.Slice:
			for i := 0; i < rv.Len(); i++ {
				fields = append(fields, rv.Index(i))
			}
		case reflect.Struct:
			for i := 0; i < rv.NumField(); i++ {
				if rv.Type().Field(i).IsExported() {
					fields = append(fields, rv.Field(i))
				}
			}
		default:
			return nil, mismatch()
		}
		if len(fields) != len(members) {
			return nil, errorst.Wrap(ErrTypeMismatch, "%s has %d members, want %d", rv.Type(), len(fields), len(members))
		}
		items := make([]any, len(members))
		for i, member := range members {
			item, err := toCanonical(member, fields[i])
			if err != nil {
				return nil, errorst.Wrap(err, "member %d", i)
			}
			items[i] = item
		}
		return items, nil
	}
	return nil, mismatch()
}

func integerToCanonical(typ VariantType, rv reflect.Value) (any, error) {
	var (
		signed bool
		i      int64
		u      uint64
	)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		signed, i = true, rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u = rv.Uint()
	default:
		return nil, errorst.Wrap(ErrTypeMismatch, "%s is not an integer", rv.Type())
	}

	overflow := func() error {
		return errorst.Wrap(ErrTypeMismatch, "value of %s overflows <%s>", rv.Type(), string(typ))
	}
	// asSigned and asUnsigned check the value fits into [lo, hi].
	asSigned := func(lo, hi int64) (int64, error) {
		if !signed {
			if u > uint64(hi) {
				return 0, overflow()
			}
			return int64(u), nil
		}
		if i < lo || i > hi {
			return 0, overflow()
		}
		return i, nil
	}
	asUnsigned := func(hi uint64) (uint64, error) {
		if signed {
			if i < 0 || uint64(i) > hi {
				return 0, overflow()
			}
			return uint64(i), nil
		}
		if u > hi {
			return 0, overflow()
		}
		return u, nil
	}

	switch typ {
	case TypeByte:
		n, err := asUnsigned(1<<8 - 1)
		return uint8(n), err
	case TypeInt16:
		n, err := asSigned(-1<<15, 1<<15-1)
		return int16(n), err
	case TypeUint16:
		n, err := asUnsigned(1<<16 - 1)
		return uint16(n), err
	case TypeInt32, TypeHandle:
		n, err := asSigned(-1<<31, 1<<31-1)
		return int32(n), err
	case TypeUint32:
		n, err := asUnsigned(1<<32 - 1)
		return uint32(n), err
	case TypeInt64:
		n, err := asSigned(-1<<63, 1<<63-1)
		return n, err
	case TypeUint64:
		n, err := asUnsigned(1<<64 - 1)
		return n, err
	}
	return nil, errorst.Wrap(ErrTypeMismatch, "<%s> is not an integer type", string(typ))
}

// >>>>>>>>>>>>>>>>>>>> canonical -> go value >>>>>>>>>>>>>>>>>>>>>>>

func fromCanonical(typ VariantType, val any, rv reflect.Value) error {
	if rv.Type() == variantType {
		rv.Set(reflect.ValueOf(Variant{typ: typ, val: val}))
		return nil
	}
	if rv.CanAddr() && rv.Addr().Type().Implements(decoderType) {
		return rv.Addr().Interface().(VariantDecoder).FromVariant(Variant{typ: typ, val: val})
	}

	mismatch := func() error {
		return errorst.Wrap(ErrDecode, "<%s> does not fit %s", string(typ), rv.Type())
	}

	switch rv.Kind() {
	case reflect.Pointer:
		elem := reflect.New(rv.Type().Elem())
		if err := fromCanonical(typ, val, elem.Elem()); err != nil {
			return err
		}
		rv.Set(elem)
		return nil
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return mismatch()
		}
		rv.Set(reflect.ValueOf(val))
		return nil
	}

	switch {
	case typ == TypeBool:
		b, ok := val.(bool)
		if !ok || rv.Kind() != reflect.Bool {
			return mismatch()
		}
		rv.SetBool(b)
	case typ == TypeDouble:
		f, ok := val.(float64)
		if !ok || (rv.Kind() != reflect.Float32 && rv.Kind() != reflect.Float64) {
			return mismatch()
		}
		rv.SetFloat(f)
	case typ.IsStringLike():
		s, ok := val.(string)
		if !ok || rv.Kind() != reflect.String {
			return mismatch()
		}
		rv.SetString(s)
	case typ.IsBasic():
		return integerFromCanonical(val, rv)
	case typ.IsArray():
		items := arrayItems(val)
		switch rv.Kind() {
		case reflect.Slice:
			rv.Set(reflect.MakeSlice(rv.Type(), len(items), len(items)))
		case reflect.Array:
			if rv.Len() != len(items) {
				return errorst.Wrap(ErrDecode, "array of %d elements into %s", len(items), rv.Type())
			}
		default:
			return mismatch()
		}
		for i, item := range items {
			if err := fromCanonical(typ.Elem(), item, rv.Index(i)); err != nil {
				return errorst.Wrap(err, "element %d", i)
			}
		}
	case typ.IsTuple():
		members, err := typ.Items()
		if err != nil {
			return err
		}
		items, ok := val.([]any)
		if !ok || len(items) != len(members) {
			return mismatch()
		}
		var fields []reflect.Value
		switch rv.Kind() {
		case reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				fields = append(fields, rv.Index(i))
			}
		case reflect.Slice:
			rv.Set(reflect.MakeSlice(rv.Type(), len(items), len(items)))
			for i := 0; i < rv.Len(); i++ {
				fields = append(fields, rv.Index(i))
			}
		case reflect.Struct:
			for i := 0; i < rv.NumField(); i++ {
				if rv.Type().Field(i).IsExported() {
					fields = append(fields, rv.Field(i))
				}
			}
		default:
			return mismatch()
		}
		if len(fields) != len(members) {
			return mismatch()
		}
		for i, member := range members {
			if err := fromCanonical(member, items[i], fields[i]); err != nil {
				return errorst.Wrap(err, "member %d", i)
			}
		}
	default:
		return mismatch()
	}
	return nil
}

func integerFromCanonical(val any, rv reflect.Value) error {
	var (
		signed bool
		i      int64
		u      uint64
	)
	switch n := val.(type) {
	case uint8:
		u = uint64(n)
	case int16:
		signed, i = true, int64(n)
	case uint16:
		u = uint64(n)
	case int32:
		signed, i = true, int64(n)
	case uint32:
		u = uint64(n)
	case int64:
		signed, i = true, n
	case uint64:
		u = n
	default:
		return errorst.Wrap(ErrDecode, "%T is not an integer", val)
	}

	overflow := func() error {
		return errorst.Wrap(ErrDecode, "value overflows %s", rv.Type())
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !signed {
			if u > 1<<63-1 {
				return overflow()
			}
			i = int64(u)
		}
		if rv.OverflowInt(i) {
			return overflow()
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if signed {
			if i < 0 {
				return overflow()
			}
			u = uint64(i)
		}
		if rv.OverflowUint(u) {
			return overflow()
		}
		rv.SetUint(u)
	default:
		return errorst.Wrap(ErrDecode, "integer into %s", rv.Type())
	}
	return nil
}
