package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Recognized operations. Anything else is rejected at dispatch time.
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
	OpSelect = "SELECT"
	OpNone   = "NONE"
)

// ErrParse marks a command block that is not well-formed JSON. It is
// surfaced to the user as an invalid command, never retried.
var ErrParse = errors.New("invalid command payload")

// Command is the structured record the model is asked to emit. The meaning
// of Fields depends on Operation: insert payload for INSERT, set clause for
// UPDATE, aggregate and date-range hints for SELECT.
type Command struct {
	Operation string         `json:"operation"`
	Table     string         `json:"table"`
	Fields    map[string]any `json:"fields"`
	Where     map[string]any `json:"where"`
}

// Parse decodes a normalized command block into a Command, upper-casing the
// operation and lower-casing the table name.
func Parse(raw string) (*Command, error) {
	var cmd Command
	if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	cmd.Operation = strings.ToUpper(strings.TrimSpace(cmd.Operation))
	cmd.Table = strings.ToLower(strings.TrimSpace(cmd.Table))
	return &cmd, nil
}

// IsNoop reports whether the model explicitly declined to act.
func (c *Command) IsNoop() bool {
	return c.Operation == "" || c.Operation == OpNone
}
