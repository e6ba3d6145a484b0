package gsettings

import (
	"slices"

	"github.com/thorn-jmh/errorst"
	"go.uber.org/multierr"

	"gsgen/pkg/schemas"
)

// Source holds the compiled schemas a store serves.
type Source struct {
	schemas map[string]*Schema
}

// Schema is the runtime view of a schema: key types and parsed defaults.
type Schema struct {
	ID   string
	Path string
	Keys map[string]*KeyInfo
	// key names in declaration order
	Names []string
}

// KeyInfo describes one key at runtime.
type KeyInfo struct {
	Name        string
	Type        VariantType
	Default     Variant
	Summary     string
	Description string
	// Choices lists the accepted nicks of choice, enum and flags keys.
	Choices []string
	Range   *schemas.Range
}

// LoadSource reads a gschema file and compiles every schema in it.
func LoadSource(path string) (*Source, error) {
	list, err := schemas.FromXMLFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(list)
}

// NewSource compiles the schemas of list. All invalid keys are reported.
func NewSource(list *schemas.SchemaList) (*Source, error) {
	src := &Source{schemas: make(map[string]*Schema, len(list.Schemas))}

	var errs error
	for _, sch := range list.Schemas {
		rs := &Schema{
			ID:   sch.ID,
			Path: sch.Path,
			Keys: make(map[string]*KeyInfo, len(sch.Keys)),
		}
		for _, key := range sch.Keys {
			info, err := compileKey(list, key)
			if err != nil {
				errs = multierr.Append(errs, errorst.Wrap(err, "schema <%s>", sch.ID))
				continue
			}
			rs.Keys[key.Name] = info
			rs.Names = append(rs.Names, key.Name)
		}
		src.schemas[sch.ID] = rs
	}
	if errs != nil {
		return nil, errs
	}
	return src, nil
}

func compileKey(list *schemas.SchemaList, key *schemas.Key) (*KeyInfo, error) {
	sig, err := key.Signature()
	if err != nil {
		return nil, err
	}

	info := &KeyInfo{
		Name:        key.Name,
		Summary:     key.Summary,
		Description: key.Description,
		Range:       key.Range,
	}

	switch sig.Kind {
	case schemas.SignatureEnum:
		enum, err := list.Enum(sig.Value)
		if err != nil {
			return nil, errorst.Wrap(err, "key <%s>", key.Name)
		}
		info.Type = TypeString
		for _, v := range enum.Values {
			info.Choices = append(info.Choices, v.Nick)
		}
	case schemas.SignatureFlags:
		flags, err := list.Flag(sig.Value)
		if err != nil {
			return nil, errorst.Wrap(err, "key <%s>", key.Name)
		}
		info.Type = TypeStringArray
		for _, v := range flags.Values {
			info.Choices = append(info.Choices, v.Nick)
		}
	default:
		info.Type = VariantType(sig.Value)
		if err := info.Type.Validate(); err != nil {
			return nil, errorst.Wrap(err, "key <%s>", key.Name)
		}
		info.Choices = key.ChoiceValues()
	}

	info.Default, err = ParseVariant(info.Type, key.Default)
	if err != nil {
		return nil, errorst.Wrap(err, "invalid default of key <%s>", key.Name)
	}
	if err := info.check(info.Default); err != nil {
		return nil, errorst.Wrap(err, "invalid default of key <%s>", key.Name)
	}
	return info, nil
}

// check validates v against the key type and choices. Ranges are not enforced.
func (k *KeyInfo) check(v Variant) error {
	if v.Type() != k.Type {
		return errorst.Wrap(ErrTypeMismatch, "key <%s> has type <%s>, got <%s>", k.Name, string(k.Type), string(v.Type()))
	}
	if len(k.Choices) == 0 {
		return nil
	}

	var nicks []string
	switch val := v.Value().(type) {
	case string:
		nicks = []string{val}
	case []string:
		nicks = val
	}
	for _, n := range nicks {
		if !slices.Contains(k.Choices, n) {
			return errorst.Wrap(ErrInvalidValue, "%q is not one of %v for key <%s>", n, k.Choices, k.Name)
		}
	}
	return nil
}

// Schema returns the compiled schema with the given id.
func (s *Source) Schema(id string) (*Schema, error) {
	sch, ok := s.schemas[id]
	if !ok {
		return nil, errorst.Wrap(ErrUnknownSchema, "schema <%s>", id)
	}
	return sch, nil
}

// Key returns the runtime description of a key.
func (s *Source) Key(schemaID, key string) (*KeyInfo, error) {
	sch, err := s.Schema(schemaID)
	if err != nil {
		return nil, err
	}
	info, ok := sch.Keys[key]
	if !ok {
		return nil, errorst.Wrap(ErrUnknownKey, "no key <%s> in schema <%s>", key, schemaID)
	}
	return info, nil
}

// IDs returns the ids of all compiled schemas.
func (s *Source) IDs() []string {
	ids := make([]string, 0, len(s.schemas))
	for id := range s.schemas {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
