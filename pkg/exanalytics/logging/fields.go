package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// ChartID adds a chart id field.
func ChartID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("chart_id", id)
	}
}

// ChartType adds a chart type field.
func ChartType(t string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("chart_type", t)
	}
}

// UploadID adds an upload id field.
func UploadID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("upload_id", id)
	}
}

// RequestID adds the X-Request-ID of an API call.
func RequestID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("request_id", id)
	}
}

// HTTP adds method, path and status fields.
func HTTP(method, path string, status int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("method", method).Str("path", path).Int("status", status)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field. A nil error adds nothing.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Count adds an integer field with a custom key.
func Count(key string, n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, n)
	}
}

// Str adds a string field with a custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
