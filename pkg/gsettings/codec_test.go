package gsettings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int32
	Y int32
}

type mode int32

func (m mode) ToVariant() Variant {
	if m == 1 {
		return NewString("on")
	}
	return NewString("off")
}

func (m *mode) FromVariant(v Variant) error {
	s, _ := v.Str()
	switch s {
	case "on":
		*m = 1
	case "off":
		*m = 0
	default:
		return ErrDecode
	}
	return nil
}

func TestEncode(t *testing.T) {
	t.Run("Should convert by kind", func(t *testing.T) {
		v, err := Encode(TypeInt64, 30*time.Second)
		require.NoError(t, err)
		assert.Equal(t, int64(30*time.Second), v.Value())

		v, err = Encode("(ii)", [2]int32{3, 4})
		require.NoError(t, err)
		assert.Equal(t, []any{int32(3), int32(4)}, v.Value())

		v, err = Encode("(ii)", point{X: 1, Y: 2})
		require.NoError(t, err)
		assert.Equal(t, "(1, 2)", v.String())

		v, err = Encode(TypeStringArray, []string{"a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, v.Value())

		v, err = Encode(TypeInt32, 7)
		require.NoError(t, err)
		assert.Equal(t, int32(7), v.Value())
	})

	t.Run("Should use the value's own encoding", func(t *testing.T) {
		v, err := Encode(TypeString, mode(1))
		require.NoError(t, err)
		assert.Equal(t, "on", v.Value())

		_, err = Encode(TypeInt32, mode(1))
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("Should reject incompatible values", func(t *testing.T) {
		_, err := Encode(TypeInt32, "600")
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = Encode(TypeInt32, int64(1)<<40)
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = Encode(TypeUint32, -1)
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = Encode("(ii)", []int32{1})
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = Encode[any](TypeBool, nil)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestDecode(t *testing.T) {
	t.Run("Should fill Go values", func(t *testing.T) {
		d, err := Decode[time.Duration](NewInt64(int64(time.Minute)))
		require.NoError(t, err)
		assert.Equal(t, time.Minute, d)

		pair, err := Decode[[2]int32](MustParseVariant("(ii)", "(5, 6)"))
		require.NoError(t, err)
		assert.Equal(t, [2]int32{5, 6}, pair)

		p, err := Decode[point](MustParseVariant("(ii)", "(5, 6)"))
		require.NoError(t, err)
		assert.Equal(t, point{X: 5, Y: 6}, p)

		strs, err := Decode[[]string](NewStringArray([]string{"x", "y"}))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, strs)

		ptr, err := Decode[*string](NewString("s"))
		require.NoError(t, err)
		require.NotNil(t, ptr)
		assert.Equal(t, "s", *ptr)

		anyv, err := Decode[any](NewBool(true))
		require.NoError(t, err)
		assert.Equal(t, true, anyv)
	})

	t.Run("Should call FromVariant", func(t *testing.T) {
		m, err := Decode[mode](NewString("on"))
		require.NoError(t, err)
		assert.Equal(t, mode(1), m)

		_, err = Decode[mode](NewString("maybe"))
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("Should report decode errors", func(t *testing.T) {
		_, err := Decode[bool](NewInt32(1))
		assert.ErrorIs(t, err, ErrDecode)

		_, err = Decode[int8](NewInt32(1000))
		assert.ErrorIs(t, err, ErrDecode)

		_, err = Decode[uint32](NewInt32(-1))
		assert.ErrorIs(t, err, ErrDecode)

		_, err = Decode[[3]int32](MustParseVariant("(ii)", "(5, 6)"))
		assert.ErrorIs(t, err, ErrDecode)

		_, err = Decode[int32](Variant{})
		assert.ErrorIs(t, err, ErrDecode)
	})
}
