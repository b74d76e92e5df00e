// Package models defines data structures for chart records, spreadsheet rows and render output.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	// KindAbsent marks a missing or null cell.
	KindAbsent ValueKind = iota
	// KindString marks a text cell.
	KindString
	// KindNumber marks a numeric cell.
	KindNumber
)

// Value is a single spreadsheet cell: absent, a string or a number.
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// Absent returns the absent value.
func Absent() Value {
	return Value{}
}

// String returns a text value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether v holds no value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsString reports whether v holds text.
func (v Value) IsString() bool { return v.kind == KindString }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the numeric value and true, or 0 and false for non-numbers.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the display form of v. Numbers use the shortest
// representation that round-trips; absent values render as "".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Truthy reports whether v counts as set when walking a fallback chain.
// Absent values, empty strings and zero are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindNumber:
		// NaN != NaN, so this also rejects NaN.
		return v.num != 0 && v.num == v.num
	default:
		return false
	}
}

// MarshalJSON encodes absent as null, strings and numbers natively.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes any JSON scalar into a Value. true becomes the
// string "true", false becomes absent, and arrays, objects and numbers
// outside the float64 range keep their raw JSON text as a string.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Absent()
		return nil
	}

	switch data[0] {
	case 'n':
		*v = Absent()
	case 't':
		*v = String("true")
	case 'f':
		*v = Absent()
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case '[', '{':
		*v = String(string(data))
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			// Out of float64 range: keep the literal so the row still decodes.
			*v = String(string(data))
		case err != nil:
			return err
		default:
			*v = Number(f)
		}
	}
	return nil
}

// ValueOf converts a Go scalar into a Value. Unsupported types are absent.
func ValueOf(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Absent()
	case Value:
		return t
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case bool:
		if t {
			return String("true")
		}
		return Absent()
	default:
		return Absent()
	}
}
