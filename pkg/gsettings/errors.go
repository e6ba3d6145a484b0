package gsettings

import "github.com/thorn-jmh/errorst"

var (
	ErrNotWritable    = errorst.NewError("key is not writable")
	ErrUnknownKey     = errorst.NewError("unknown key")
	ErrUnknownSchema  = errorst.NewError("unknown schema")
	ErrTypeMismatch   = errorst.NewError("type mismatch")
	ErrInvalidValue   = errorst.NewError("value not allowed")
	ErrDecode         = errorst.NewError("failed to decode variant")
	ErrParse          = errorst.NewError("failed to parse variant text")
	ErrNotBindable    = errorst.NewError("object cannot be bound")
	ErrNoDefaultStore = errorst.NewError("no default store")
)
