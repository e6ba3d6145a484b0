package settingsgen

import (
	"go/token"

	"github.com/thorn-jmh/errorst"

	"gsgen/pkg/gsettings"
	"gsgen/pkg/schemas"
)

// EnumFromChoices builds the enum of a string key with inline choices.
// Discriminants follow declaration order.
func EnumFromChoices(key *schemas.Key) (*AuxType, error) {
	choices := key.ChoiceValues()
	members := make([]Member, len(choices))
	for i, nick := range choices {
		members[i] = Member{Nick: nick, Value: int64(i)}
	}
	return newAuxType(AuxEnum, ScopeKey, key.Name, PascalStyle(key.Name), members)
}

// EnumFromDef builds the enum of a schema level enum. A value without an
// explicit number takes its 0-based position in the list.
func EnumFromDef(enum *schemas.Enum) (*AuxType, error) {
	members := make([]Member, len(enum.Values))
	for i, v := range enum.Values {
		members[i] = Member{Nick: v.Nick, Value: int64(i)}
		if v.Value != nil {
			members[i].Value = int64(*v.Value)
		}
	}
	return newAuxType(AuxEnum, ScopeEnum, enum.ID, PascalStyle(lastSegment(enum.ID)), members)
}

// FlagsFromDef builds the bit set of a schema level flags definition.
func FlagsFromDef(flags *schemas.Flag) (*AuxType, error) {
	members := make([]Member, len(flags.Values))
	for i, v := range flags.Values {
		if v.Value == nil {
			return nil, errorst.Wrap(schemas.ErrMissingFlagValue, "nick <%s> in flags <%s> has no value", v.Nick, flags.ID)
		}
		members[i] = Member{Nick: v.Nick, Value: int64(*v.Value)}
	}
	return newAuxType(AuxFlags, ScopeFlags, flags.ID, PascalStyle(lastSegment(flags.ID)), members)
}

func newAuxType(kind AuxKind, scope AuxScope, id, name string, members []Member) (*AuxType, error) {
	if !token.IsIdentifier(name) {
		return nil, errorst.Wrap(ErrInvalidName, "%s <%s> yields type name %q", kind, id, name)
	}
	aux := &AuxType{Kind: kind, Scope: scope, ID: id, Name: name, WireType: string(gsettings.TypeString)}
	if kind == AuxFlags {
		aux.WireType = string(gsettings.TypeStringArray)
	}

	seen := make(map[string]string, len(members))
	for i := range members {
		m := &members[i]
		m.Ident = name + PascalStyle(m.Nick)
		if m.Ident == name {
			return nil, errorst.Wrap(ErrInvalidName, "nick %q of %s <%s> yields no identifier", m.Nick, kind, id)
		}
		if prev, ok := seen[m.Ident]; ok {
			return nil, errorst.Wrap(ErrNameCollision, "nicks %q and %q of %s <%s> both map to %s", prev, m.Nick, kind, id, m.Ident)
		}
		seen[m.Ident] = m.Nick
	}
	aux.Members = members
	return aux, nil
}

// >>>>>>>>>>>>>>>>>>>> wire contract >>>>>>>>>>>>>>>>>>>>>>>

// EnumToWire returns the nick of value. With duplicate values the first
// declared nick wins.
func (a *AuxType) EnumToWire(value int64) (string, bool) {
	for _, m := range a.Members {
		if m.Value == value {
			return m.Nick, true
		}
	}
	return "", false
}

// EnumFromWire returns the member named nick.
func (a *AuxType) EnumFromWire(nick string) (Member, bool) {
	return a.Member(nick)
}

// FlagsToWire returns the nicks whose bits are all set in bits, in
// declaration order. Zero valued nicks are never reported.
func (a *AuxType) FlagsToWire(bits uint32) []string {
	nicks := []string{}
	for _, m := range a.Members {
		v := uint32(m.Value)
		if v != 0 && bits&v == v {
			nicks = append(nicks, m.Nick)
		}
	}
	return nicks
}

// FlagsFromWire ors the bits of nicks together. It fails on an unknown nick.
func (a *AuxType) FlagsFromWire(nicks []string) (uint32, bool) {
	var bits uint32
	for _, nick := range nicks {
		m, ok := a.Member(nick)
		if !ok {
			return 0, false
		}
		bits |= uint32(m.Value)
	}
	return bits, true
}

// >>>>>>>>>>>>>>>>>>>> dedup >>>>>>>>>>>>>>>>>>>>>>>

type auxKey struct {
	scope AuxScope
	id    string
}

// auxSet keeps one aux type per (scope, id) in insertion order.
type auxSet struct {
	index map[auxKey]*AuxType
	order []*AuxType
}

func newAuxSet() *auxSet {
	return &auxSet{index: make(map[auxKey]*AuxType)}
}

// add returns the aux type already stored for a's scope and id, storing a
// if there is none.
func (s *auxSet) add(a *AuxType) *AuxType {
	k := auxKey{scope: a.Scope, id: a.ID}
	if prev, ok := s.index[k]; ok {
		return prev
	}
	s.index[k] = a
	s.order = append(s.order, a)
	return a
}

func (s *auxSet) list() []*AuxType {
	return s.order
}
