package customer

import "strings"

// Customer is a master-data row from the cliente table. The primary key is
// chosen by the operator, not generated.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Details is the optional 1:1 companion row from detalle_cliente. It shares
// the customer's primary key; all text attributes are optional and blank
// input is persisted as NULL.
type Details struct {
	ID      int64   `json:"id"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// FullView is the read-only inner join of a customer and its details.
type FullView struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func NewFullView(c *Customer, d *Details) FullView {
	return FullView{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Address: d.Address,
		Phone:   d.Phone,
		Notes:   d.Notes,
	}
}

// NormalizeOptional maps nil or all-whitespace input to nil so it binds as
// SQL NULL, never as an empty string.
func NormalizeOptional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// Normalized returns a copy of the details with every optional attribute
// passed through NormalizeOptional.
func (d *Details) Normalized() *Details {
	return &Details{
		ID:      d.ID,
		Address: NormalizeOptional(d.Address),
		Phone:   NormalizeOptional(d.Phone),
		Notes:   NormalizeOptional(d.Notes),
	}
}
