package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// UUIDList is an ordered list of ids stored as a jsonb column.
// Order is significant: teams rotate roles by position, rooms keep
// teams in creation order.
type UUIDList []uuid.UUID

func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]uuid.UUID{})
	}

	return json.Marshal(l)
}

func (l *UUIDList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("scan uuid list: unsupported type %T", src)
	}
}

// IndexOf returns the position of id in the list, or -1.
func (l UUIDList) IndexOf(id uuid.UUID) int {
	for i, v := range l {
		if v == id {
			return i
		}
	}

	return -1
}

func (l UUIDList) Contains(id uuid.UUID) bool {
	return l.IndexOf(id) >= 0
}
