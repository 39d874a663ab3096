package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// GUID is an object identifier as stored by the distributed link tracking
// service. The zero value means the identifier is absent.
type GUID struct {
	uuid.UUID
}

// IsZero reports whether the identifier is absent.
func (g GUID) IsZero() bool {
	return g.UUID == uuid.Nil
}

// String renders the identifier, or an empty string when absent.
func (g GUID) String() string {
	if g.IsZero() {
		return ""
	}
	return g.UUID.String()
}

// UnmarshalJSON accepts a GUID string, an empty string or null.
func (g *GUID) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil || *s == "" {
		g.UUID = uuid.Nil
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return err
	}
	g.UUID = id
	return nil
}

// MarshalJSON writes the identifier as a string, empty when absent.
func (g GUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}
