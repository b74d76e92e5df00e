// Package output serializes results for command-line output.
package output

import (
	"encoding/json"
	"io"
	"os"
)

// ToJSON encodes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteJSON encodes v to w followed by a newline.
func WriteJSON(w io.Writer, v interface{}, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteJSONFile encodes v into path, or to stdout when path is empty.
func WriteJSONFile(path string, v interface{}, pretty bool) error {
	if path == "" {
		return WriteJSON(os.Stdout, v, pretty)
	}
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
