package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignature(t *testing.T) {
	t.Run("Should parse every kind", func(t *testing.T) {
		cases := []struct {
			text string
			want Signature
		}{
			{"s", TypeSignature("s")},
			{"(ii)", TypeSignature("(ii)")},
			{"enum:io.example.Mode", EnumSignature("io.example.Mode")},
			{" flags: io.example.Panels ", FlagsSignature("io.example.Panels")},
		}
		for _, tc := range cases {
			got, err := ParseSignature(tc.text)
			require.NoError(t, err, tc.text)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("Should round-trip through String", func(t *testing.T) {
		for _, sig := range []Signature{TypeSignature("as"), EnumSignature("e"), FlagsSignature("f")} {
			got, err := ParseSignature(sig.String())
			require.NoError(t, err)
			assert.Equal(t, sig, got)
		}
	})

	t.Run("Should reject empty signatures", func(t *testing.T) {
		for _, text := range []string{"", "  ", "enum:", "flags: "} {
			_, err := ParseSignature(text)
			assert.ErrorIs(t, err, ErrInvalidSignature, text)
		}
	})

	t.Run("Should distinguish kinds with the same value", func(t *testing.T) {
		assert.NotEqual(t, TypeSignature("s"), EnumSignature("s"))
		m := map[Signature]int{TypeSignature("s"): 1}
		_, ok := m[EnumSignature("s")]
		assert.False(t, ok)
	})
}

func TestKey_Signature(t *testing.T) {
	t.Run("Should return the single declared kind", func(t *testing.T) {
		sig, err := (&Key{Name: "k", Enum: "e"}).Signature()
		require.NoError(t, err)
		assert.Equal(t, EnumSignature("e"), sig)
		assert.Equal(t, "enum", sig.Kind.String())
	})

	t.Run("Should reject zero or several kinds", func(t *testing.T) {
		_, err := (&Key{Name: "k"}).Signature()
		assert.ErrorIs(t, err, ErrInvalidSignature)

		_, err = (&Key{Name: "k", Type: "s", Flags: "f"}).Signature()
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("Should list distinct schema signatures", func(t *testing.T) {
		sch := &Schema{Keys: []*Key{{Name: "a", Type: "s"}, {Name: "b", Type: "s"}, {Name: "c", Enum: "s"}}}
		sigs, err := sch.Signatures()
		require.NoError(t, err)
		assert.Equal(t, []Signature{TypeSignature("s"), EnumSignature("s")}, sigs)
	})
}
