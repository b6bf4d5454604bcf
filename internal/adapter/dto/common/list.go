package common

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// UUIDList decodes the assignee field of incoming requests. Clients
// have historically sent it three ways: a JSON array of IDs, a single
// ID string, or a JSON-encoded array inside a string. All three decode
// to the same slice.
type UUIDList []uuid.UUID

// UnmarshalJSON implements json.Unmarshaler
func (l *UUIDList) UnmarshalJSON(data []byte) error {
	// Plain array of IDs.
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err == nil {
		*l = ids
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	s = strings.TrimSpace(s)
	if s == "" {
		*l = nil
		return nil
	}

	// String-wrapped JSON array.
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &ids); err != nil {
			return err
		}
		*l = ids
		return nil
	}

	// Single scalar ID.
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	*l = UUIDList{id}
	return nil
}
