package models

import "encoding/json"

// Model is implemented by every resource that is part of an instance export.
type Model interface {
	Export() (json.RawMessage, error) // All instances of this model for export.
}

// The Registry is a slice of all models available
//
// It is maintained so that operations that affect all models do not need to
// explicitly iterate over every single model.
var Registry = []Model{
	CategoryRule{},
	Goal{},
	Preference{},
	Profile{},
	Transaction{},
}
