package vars

import "errors"

// Domain-specific errors for the variable store.
var (
	ErrVariableNotFound = errors.New("variable not found")
	ErrVariableExists   = errors.New("variable already exists")
	ErrEmptyName        = errors.New("variable name is empty")
	ErrUnreadableValue  = errors.New("variable value has no recognizable quantity")
)
