// SPDX-License-Identifier: MIT
//
// File: node_json.go
// Role: JSON encoding of Node that keeps non-finite labels.
// encoding/json rejects NaN and ±Inf, while Label is a free caller value, so
// those three are written as the strings "NaN", "+Inf" and "-Inf".

package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// nodeJSON mirrors Node with a label that tolerates non-finite values.
type nodeJSON struct {
	Key    int       `json:"key"`
	Label  jsonLabel `json:"label,omitempty"`
	Marker string    `json:"marker,omitempty"`
}

// jsonLabel is a float64 whose JSON form may be a quoted non-finite value.
type jsonLabel float64

// MarshalJSON writes finite labels as numbers and the rest as strings.
func (l jsonLabel) MarshalJSON() ([]byte, error) {
	f := float64(l)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}

	return json.Marshal(f)
}

// UnmarshalJSON accepts a number or one of "NaN", "+Inf", "-Inf".
func (l *jsonLabel) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*l = jsonLabel(math.NaN())
		case "+Inf":
			*l = jsonLabel(math.Inf(1))
		case "-Inf":
			*l = jsonLabel(math.Inf(-1))
		default:
			return fmt.Errorf("core: invalid label %s", strconv.Quote(s))
		}

		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*l = jsonLabel(f)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{Key: n.Key, Label: jsonLabel(n.Label), Marker: n.Marker})
}

// UnmarshalJSON implements json.Unmarshaler. Unknown fields are rejected.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v nodeJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*n = Node{Key: v.Key, Label: float64(v.Label), Marker: v.Marker}

	return nil
}
