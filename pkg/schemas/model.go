package schemas

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/thorn-jmh/errorst"
)

// SchemaList is the root <schemalist> element of a gschema file.
type SchemaList struct {
	XMLName xml.Name  `xml:"schemalist"`
	Schemas []*Schema `xml:"schema"`
	Enums   []*Enum   `xml:"enum"`
	Flags   []*Flag   `xml:"flags"`
}

// Schema is a named collection of keys.
// https://docs.gtk.org/gio/class.Settings.html#schema-file-format
type Schema struct {
	ID   string `xml:"id,attr"`
	Path string `xml:"path,attr,omitempty"`
	Keys []*Key `xml:"key"`
}

// Key is a single typed setting of a schema.
//
// NOTE: exactly one of Type, Enum and Flags is expected to be set,
// use Signature to get the discriminated form.
type Key struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr,omitempty"`
	Enum  string `xml:"enum,attr,omitempty"`
	Flags string `xml:"flags,attr,omitempty"`

	// Meta-Data, documentation only.
	Default     string   `xml:"default"`
	Summary     string   `xml:"summary,omitempty"`
	Description string   `xml:"description,omitempty"`
	Range       *Range   `xml:"range,omitempty"`
	Choices     *Choices `xml:"choices,omitempty"`
}

// Range holds the optional numeric bounds of a key. Both ends are kept as
// they are written in the schema.
type Range struct {
	Min string `xml:"min,attr,omitempty"`
	Max string `xml:"max,attr,omitempty"`
}

// Choices is the inline list of permitted values of a string key.
type Choices struct {
	Choices []Choice `xml:"choice"`
}

// Choice is one permitted value.
type Choice struct {
	Value string `xml:"value,attr"`
}

// Enum is a schema level enumeration referenced by keys with enum="<id>".
type Enum struct {
	ID     string       `xml:"id,attr"`
	Values []*EnumValue `xml:"value"`
}

// EnumValue is a nick with an optional numeric value. Declaration order is kept.
type EnumValue struct {
	Nick     string `xml:"nick,attr"`
	RawValue string `xml:"value,attr,omitempty"`
	Value    *int32 `xml:"-"`
}

// Flag is a schema level flags definition referenced by keys with flags="<id>".
type Flag struct {
	ID     string       `xml:"id,attr"`
	Values []*FlagValue `xml:"value"`
}

// FlagValue is a nick with its bit value.
type FlagValue struct {
	Nick     string  `xml:"nick,attr"`
	RawValue string  `xml:"value,attr,omitempty"`
	Value    *uint32 `xml:"-"`
}

// ChoiceValues returns the inline choices in declaration order, or nil.
func (k *Key) ChoiceValues() []string {
	if k.Choices == nil || len(k.Choices.Choices) == 0 {
		return nil
	}
	values := make([]string, 0, len(k.Choices.Choices))
	for _, c := range k.Choices.Choices {
		values = append(values, c.Value)
	}
	return values
}

// HasChoices reports whether the key declares an inline choice list.
func (k *Key) HasChoices() bool {
	return len(k.ChoiceValues()) > 0
}

// Key returns the key named name, or nil.
func (s *Schema) Key(name string) *Key {
	for _, k := range s.Keys {
		if k.Name == name {
			return k
		}
	}
	return nil
}

// >>>>>>>>>>>>>>>>>>>> post processing >>>>>>>>>>>>>>>>>>>>>>>

// normalize trims text nodes and parses numeric values of enums and flags.
func (l *SchemaList) normalize() error {
	for _, e := range l.Enums {
		for _, v := range e.Values {
			raw := strings.TrimSpace(v.RawValue)
			if raw == "" {
				continue
			}
			n, err := strconv.ParseInt(raw, 0, 32)
			if err != nil {
				return errorst.Wrap(err, "invalid value %q of nick <%s> in enum <%s>", raw, v.Nick, e.ID)
			}
			n32 := int32(n)
			v.Value = &n32
		}
	}

	for _, f := range l.Flags {
		for _, v := range f.Values {
			raw := strings.TrimSpace(v.RawValue)
			if raw == "" {
				return errorst.Wrap(ErrMissingFlagValue, "nick <%s> in flags <%s> has no value", v.Nick, f.ID)
			}
			n, err := strconv.ParseUint(raw, 0, 32)
			if err != nil {
				return errorst.Wrap(err, "invalid value %q of nick <%s> in flags <%s>", raw, v.Nick, f.ID)
			}
			n32 := uint32(n)
			v.Value = &n32
		}
	}

	for _, s := range l.Schemas {
		seen := make(map[string]bool, len(s.Keys))
		for _, k := range s.Keys {
			if seen[k.Name] {
				return errorst.Wrap(ErrDuplicateKey, "key <%s> declared twice in schema <%s>", k.Name, s.ID)
			}
			seen[k.Name] = true

			k.Default = strings.TrimSpace(k.Default)
			k.Summary = strings.TrimSpace(k.Summary)
			k.Description = strings.TrimSpace(k.Description)
			if k.Range != nil {
				k.Range.Min = strings.TrimSpace(k.Range.Min)
				k.Range.Max = strings.TrimSpace(k.Range.Max)
			}
		}
	}

	return nil
}
