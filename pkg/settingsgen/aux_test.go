package settingsgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gsgen/pkg/schemas"
)

func int32p(v int32) *int32    { return &v }
func uint32p(v uint32) *uint32 { return &v }

func TestEnumFromDef(t *testing.T) {
	t.Run("Should number unset values by position", func(t *testing.T) {
		aux, err := EnumFromDef(&schemas.Enum{ID: "io.example.Letters", Values: []*schemas.EnumValue{
			{Nick: "a"},
			{Nick: "b", Value: int32p(5)},
			{Nick: "c"},
		}})
		require.NoError(t, err)

		assert.Equal(t, "Letters", aux.Name)
		assert.Equal(t, ScopeEnum, aux.Scope)
		assert.Equal(t, "s", aux.WireType)
		assert.Equal(t, []Member{
			{Nick: "a", Ident: "LettersA", Value: 0},
			{Nick: "b", Ident: "LettersB", Value: 5},
			{Nick: "c", Ident: "LettersC", Value: 2},
		}, aux.Members)
	})

	t.Run("Should round-trip every nick", func(t *testing.T) {
		enum, err := loadSample(t).Enum("io.example.test.ColorScheme")
		require.NoError(t, err)
		aux, err := EnumFromDef(enum)
		require.NoError(t, err)

		for _, m := range aux.Members {
			nick, ok := aux.EnumToWire(m.Value)
			require.True(t, ok)
			assert.Equal(t, m.Nick, nick)

			back, ok := aux.EnumFromWire(nick)
			require.True(t, ok)
			assert.Equal(t, m, back)
		}
		assert.Equal(t, "ColorSchemePreferDark", aux.Members[1].Ident)

		_, ok := aux.EnumFromWire("PreferDark")
		assert.False(t, ok)
		_, ok = aux.EnumToWire(42)
		assert.False(t, ok)
	})

	t.Run("Should map duplicate values to the first nick", func(t *testing.T) {
		aux, err := EnumFromDef(&schemas.Enum{ID: "e", Values: []*schemas.EnumValue{
			{Nick: "one", Value: int32p(1)},
			{Nick: "uno", Value: int32p(1)},
		}})
		require.NoError(t, err)
		nick, _ := aux.EnumToWire(1)
		assert.Equal(t, "one", nick)
	})

	t.Run("Should reject nicks mapping to the same identifier", func(t *testing.T) {
		_, err := EnumFromDef(&schemas.Enum{ID: "e", Values: []*schemas.EnumValue{{Nick: "a-b"}, {Nick: "a_b"}}})
		assert.ErrorIs(t, err, ErrNameCollision)

		_, err = EnumFromDef(&schemas.Enum{ID: "e", Values: []*schemas.EnumValue{{Nick: "--"}}})
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}

func TestEnumFromChoices(t *testing.T) {
	t.Run("Should name the enum after the key", func(t *testing.T) {
		key := loadSample(t).Schema("io.example.test").Key("theme")
		aux, err := EnumFromChoices(key)
		require.NoError(t, err)

		assert.Equal(t, "Theme", aux.Name)
		assert.Equal(t, ScopeKey, aux.Scope)
		assert.Equal(t, "theme", aux.ID)
		assert.Equal(t, []string{"Theme", "ParseTheme", "ThemeLight", "ThemeDark", "ThemeSystem"}, aux.Idents())
	})
}

func TestFlagsFromDef(t *testing.T) {
	flags, err := loadSample(t).Flag("io.example.test.Panels")
	require.NoError(t, err)
	aux, err := FlagsFromDef(flags)
	require.NoError(t, err)

	t.Run("Should keep declared bit values", func(t *testing.T) {
		assert.Equal(t, "Panels", aux.Name)
		assert.Equal(t, AuxFlags, aux.Kind)
		assert.Equal(t, "as", aux.WireType)
		assert.Equal(t, int64(4), aux.Members[2].Value)
	})

	t.Run("Should round-trip every subset", func(t *testing.T) {
		for bits := uint32(0); bits < 8; bits++ {
			nicks := aux.FlagsToWire(bits)
			back, ok := aux.FlagsFromWire(nicks)
			require.True(t, ok)
			assert.Equal(t, bits, back, "subset %03b", bits)
		}
		assert.Equal(t, []string{}, aux.FlagsToWire(0))
	})

	t.Run("Should map union to set union", func(t *testing.T) {
		assert.Equal(t, []string{"sidebar", "minimap"}, aux.FlagsToWire(1|4))
		bits, ok := aux.FlagsFromWire([]string{"minimap", "sidebar"})
		require.True(t, ok)
		assert.Equal(t, uint32(5), bits)
	})

	t.Run("Should reject unknown nicks", func(t *testing.T) {
		_, ok := aux.FlagsFromWire([]string{"sidebar", "toolbar"})
		assert.False(t, ok)
	})

	t.Run("Should require explicit values", func(t *testing.T) {
		_, err := FlagsFromDef(&schemas.Flag{ID: "f", Values: []*schemas.FlagValue{{Nick: "x"}}})
		assert.ErrorIs(t, err, schemas.ErrMissingFlagValue)

		aux, err := FlagsFromDef(&schemas.Flag{ID: "f", Values: []*schemas.FlagValue{{Nick: "x", Value: uint32p(2)}}})
		require.NoError(t, err)
		assert.Equal(t, "F", aux.Name)
	})
}

func TestAuxSet(t *testing.T) {
	t.Run("Should keep one type per scope and id", func(t *testing.T) {
		set := newAuxSet()
		first := &AuxType{Scope: ScopeEnum, ID: "e"}
		assert.Same(t, first, set.add(first))
		assert.Same(t, first, set.add(&AuxType{Scope: ScopeEnum, ID: "e"}))
		set.add(&AuxType{Scope: ScopeKey, ID: "e"})
		assert.Len(t, set.list(), 2)
	})
}
