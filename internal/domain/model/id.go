package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a foreign-key reference. Form posts send ids as strings ("1"), API
// callers send numbers; both decode to the same value.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", s)
		}
		*id = ID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n)
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IDPtr is a small helper for building records in code.
func IDPtr(v int64) *ID {
	id := ID(v)
	return &id
}
