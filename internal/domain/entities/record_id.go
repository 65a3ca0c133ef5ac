package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RecordID is a store-assigned identifier. Stores may use UUID or integer
// identity columns, so both JSON strings and numbers are accepted.
type RecordID string

// String returns the identifier text
func (id RecordID) String() string {
	return string(id)
}

// IsZero reports whether no identifier was assigned
func (id RecordID) IsZero() bool {
	return id == ""
}

// UnmarshalJSON accepts a string, a number or null
func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id must be a string or number: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}
