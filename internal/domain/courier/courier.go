package courier

import "strings"

// Courier is a master-data row from the repartidor table. The phone is
// optional; blank input is persisted as NULL.
type Courier struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

// NormalizePhone maps nil or all-whitespace input to nil so it binds as SQL
// NULL, never as an empty string.
func NormalizePhone(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
