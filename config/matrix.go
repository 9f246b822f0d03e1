// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"encoding/json"
)

// MatrixSpec is an external matrix in the 0/1/_ token format.
//
// It decodes only from a string. YAML 1.1 reads an unquoted 101_010 as the
// integer 101010 and 011 as octal 9; such values are rejected with
// ErrInvalidConfig instead of being turned back into different digits.
type MatrixSpec string

// UnmarshalJSON implements json.Unmarshaler.
func (s *MatrixSpec) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return invalid("matrix", "%s is not a string, quote the matrix value", data)
	}
	*s = MatrixSpec(v)
	return nil
}
