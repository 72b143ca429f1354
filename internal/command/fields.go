package command

import (
	"fmt"
	"strconv"
	"strings"
)

// The model is inconsistent about JSON types: quantities arrive as numbers
// or strings, booleans as true/"sim"/1. These helpers read a field under
// any of the given keys and coerce it.

// StringField returns the first non-empty string value among keys.
func StringField(fields map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			return strconv.FormatBool(t)
		default:
			return fmt.Sprintf("%v", t)
		}
	}
	return ""
}

// NumberField returns the first numeric value among keys, or 0.
func NumberField(fields map[string]any, keys ...string) float64 {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t
		case string:
			s := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// IntField returns the first numeric value among keys truncated to int64.
func IntField(fields map[string]any, keys ...string) int64 {
	return int64(NumberField(fields, keys...))
}

// BoolField returns the first boolean-ish value among keys.
func BoolField(fields map[string]any, keys ...string) (bool, bool) {
	for _, key := range keys {
		v, ok := fields[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case bool:
			return t, true
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "true", "sim", "yes", "1":
				return true, true
			case "false", "não", "nao", "no", "0":
				return false, true
			}
		case float64:
			return t != 0, true
		}
	}
	return false, false
}
