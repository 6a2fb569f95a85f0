package client

import (
	"encoding/json"
	"reflect"
)

// body is the JSON object sent to an endpoint. Mandatory fields are added
// with set; optional ones with opt, which leaves nil values out entirely so
// the server applies its own defaults.
type body map[string]interface{}

func newBody(apiKey string) body {
	return body{"apiKey": apiKey}
}

func (b body) set(key string, value interface{}) body {
	b[key] = value

	return b
}

func (b body) opt(key string, value interface{}) body {
	if value == nil {
		return b
	}

	if raw, ok := value.(json.RawMessage); ok {
		if len(raw) > 0 {
			b[key] = raw
		}

		return b
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return b
		}

		b[key] = v.Elem().Interface()
	case reflect.Slice, reflect.Map:
		if v.IsNil() {
			return b
		}

		b[key] = value
	default:
		b[key] = value
	}

	return b
}

// optTrue adds key only when value is set and true.
func (b body) optTrue(key string, value *bool) body {
	if value != nil && *value {
		b[key] = true
	}

	return b
}
