package settingsgen

import "github.com/thorn-jmh/errorst"

var (
	ErrTargetMode        = errorst.NewError("override must target exactly one of signature and key_name")
	ErrUselessOverride   = errorst.NewError("override signature is not used by any key")
	ErrUnknownKeyName    = errorst.NewError("override key name not found in schema")
	ErrDuplicateOverride = errorst.NewError("duplicate override")
	ErrMissingType       = errorst.NewError("define override requires arg_type and ret_type")
	ErrInvalidType       = errorst.NewError("invalid go type")
	ErrUnknownSignature  = errorst.NewError("unknown signature")
	ErrNameCollision     = errorst.NewError("name collision")
	ErrInvalidName       = errorst.NewError("not a valid go identifier")
)
