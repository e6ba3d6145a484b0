package schemas

import (
	"github.com/thorn-jmh/errorst"
)

var (
	ErrNoSchema         = errorst.NewError("no schema in schema list")
	ErrAmbiguousSchema  = errorst.NewError("several schemas found, a schema id is required")
	ErrSchemaNotFound   = errorst.NewError("schema not found")
	ErrInvalidSignature = errorst.NewError("invalid signature")
	ErrDuplicateKey     = errorst.NewError("duplicate key")
	ErrEnumNotFound     = errorst.NewError("enum not found")
	ErrFlagNotFound     = errorst.NewError("flags not found")
	ErrMissingFlagValue = errorst.NewError("flags value without numeric value")
)

// Select returns the schema to generate from. An empty id is only
// accepted when the list holds exactly one schema.
func (l *SchemaList) Select(id string) (*Schema, error) {
	if len(l.Schemas) == 0 {
		return nil, ErrNoSchema
	}

	if id == "" {
		if len(l.Schemas) > 1 {
			ids := make([]string, 0, len(l.Schemas))
			for _, s := range l.Schemas {
				ids = append(ids, s.ID)
			}
			return nil, errorst.Wrap(ErrAmbiguousSchema, "candidates: %v", ids)
		}
		return l.Schemas[0], nil
	}

	for _, s := range l.Schemas {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errorst.Wrap(ErrSchemaNotFound, "no schema with id <%s>", id)
}

// Enum returns the enum definition with the given id.
func (l *SchemaList) Enum(id string) (*Enum, error) {
	for _, e := range l.Enums {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, errorst.Wrap(ErrEnumNotFound, "no enum with id <%s>", id)
}

// Flag returns the flags definition with the given id.
func (l *SchemaList) Flag(id string) (*Flag, error) {
	for _, f := range l.Flags {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, errorst.Wrap(ErrFlagNotFound, "no flags with id <%s>", id)
}

// Schema returns the schema with the given id, or nil.
func (l *SchemaList) Schema(id string) *Schema {
	for _, s := range l.Schemas {
		if s.ID == id {
			return s
		}
	}
	return nil
}
