package dto

import (
	"fmt"
	"strings"

	"lamprea-admin/internal/domain/customer"
)

// SaveCustomerRequest carries a customer and its optional details in one
// payload; create and update share the shape. Blank optional fields are
// stored as NULL.
type SaveCustomerRequest struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *SaveCustomerRequest) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("id must be a positive number")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email cannot be empty")
	}
	return nil
}

func (r *SaveCustomerRequest) ToDomain() (*customer.Customer, *customer.Details) {
	c := &customer.Customer{
		ID:    r.ID,
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
	}
	d := &customer.Details{
		ID:      r.ID,
		Address: r.Address,
		Phone:   r.Phone,
		Notes:   r.Notes,
	}
	return c, d
}

type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	if c == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}

type DetailsResponse struct {
	ID      int64   `json:"id"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func NewDetailsResponse(d *customer.Details) DetailsResponse {
	if d == nil {
		return DetailsResponse{}
	}
	return DetailsResponse{ID: d.ID, Address: d.Address, Phone: d.Phone, Notes: d.Notes}
}

// CustomerFullResponse is the joined customer + details read model.
type CustomerFullResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func NewCustomerFullResponse(v customer.FullView) CustomerFullResponse {
	return CustomerFullResponse{
		ID:      v.ID,
		Name:    v.Name,
		Email:   v.Email,
		Address: v.Address,
		Phone:   v.Phone,
		Notes:   v.Notes,
	}
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
