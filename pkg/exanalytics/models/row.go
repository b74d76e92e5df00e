package models

// RawRow is one spreadsheet row keyed by column header. Rows have no
// fixed schema: any key may be missing or hold any Value kind.
type RawRow map[string]Value

// Row builds a RawRow from Go scalars, mainly for tests and fixtures.
func Row(kv map[string]interface{}) RawRow {
	row := make(RawRow, len(kv))
	for k, v := range kv {
		row[k] = ValueOf(v)
	}
	return row
}

// Get returns the value stored under key, or absent.
func (r RawRow) Get(key string) Value {
	if r == nil {
		return Absent()
	}
	return r[key]
}

// FirstTruthy walks keys in order and returns the first truthy value.
// Empty keys are skipped.
func (r RawRow) FirstTruthy(keys ...string) (Value, bool) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if v := r.Get(k); v.Truthy() {
			return v, true
		}
	}
	return Absent(), false
}

// FirstNumber walks keys in order and returns the first numeric value.
func (r RawRow) FirstNumber(keys ...string) (float64, bool) {
	for _, k := range keys {
		if k == "" {
			continue
		}
		if f, ok := r.Get(k).Float(); ok {
			return f, true
		}
	}
	return 0, false
}
