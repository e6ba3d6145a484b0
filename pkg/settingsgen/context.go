package settingsgen

import "gsgen/pkg/schemas"

// Context is what resolving a single key needs. Everything reachable from
// it is read-only while keys are resolved.
type Context struct {
	State
	List      *schemas.SchemaList
	Overrides *Overrides
}

type State struct {
	Index     int               // position of the key in its schema
	Key       *schemas.Key      // key being resolved
	Signature schemas.Signature // signature of Key
}
