// Package uuid wraps google/uuid so that IDs can be bound from URI and
// query parameters by gin.
package uuid

import (
	"fmt"

	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements gin's binding.BindUnmarshaler. An empty
// parameter is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// ParseAll parses every value, e.g. all values of a repeated query
// parameter. Duplicates are removed, the order is kept.
func ParseAll(values []string) ([]google_uuid.UUID, error) {
	ids := make([]google_uuid.UUID, 0, len(values))
	seen := make(map[google_uuid.UUID]bool, len(values))

	for _, v := range values {
		id, err := google_uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid UUID: %w", v, err)
		}

		if seen[id] {
			continue
		}

		seen[id] = true
		ids = append(ids, id)
	}

	return ids, nil
}
