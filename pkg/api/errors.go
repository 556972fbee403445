package api

import "fmt"

// Error is the backend's error envelope ({error, type, fields}) plus the
// HTTP status it arrived with.
type Error struct {
	Status int
	Type   string
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("api: server returned status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Type, e.Status)
}
