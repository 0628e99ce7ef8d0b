package gateway

import (
	"fmt"
	"reflect"
	"strings"
)

// Field labels that change the verb of a missing-field message.
const (
	LabelText     = "text"
	LabelImage    = "image"
	LabelDropdown = "dropdown"
)

// RequiredField names a body key that must hold a non-empty value. Value is
// the display name used in messages; Key is used when Value is blank.
type RequiredField struct {
	Key   string
	Value string
	Label string
}

// Validate reports every missing required field as a ValidationError.
func Validate(body map[string]any, fields []RequiredField) error {
	var messages []string
	for _, field := range fields {
		if present(body[field.Key]) {
			continue
		}
		name := strings.TrimSpace(field.Value)
		if name == "" {
			name = field.Key
		}
		messages = append(messages, fmt.Sprintf("Please %s %s.", missingVerb(field.Label), name))
	}
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

func missingVerb(label string) string {
	switch label {
	case LabelImage:
		return "upload"
	case LabelDropdown:
		return "select"
	default:
		return "enter"
	}
}

// present treats nil, false, zero numbers, empty strings and empty
// collections as missing.
func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case File:
		return len(v.Data) > 0
	case *File:
		return v != nil && len(v.Data) > 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	}
	return true
}
