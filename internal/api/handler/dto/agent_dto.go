package dto

import (
	"fmt"
	"strings"

	"lamprea-admin/internal/domain/agent"
	"lamprea-admin/internal/domain/courier"
)

type SaveAgentRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *SaveAgentRequest) Validate() error {
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

func (r *SaveAgentRequest) ToDomain() *agent.SalesAgent {
	return &agent.SalesAgent{
		ID:    r.ID,
		Name:  strings.TrimSpace(r.Name),
		Email: strings.TrimSpace(r.Email),
	}
}

type AgentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewAgentResponse(a *agent.SalesAgent) AgentResponse {
	if a == nil {
		return AgentResponse{}
	}
	return AgentResponse{ID: a.ID, Name: a.Name, Email: a.Email}
}

type SaveCourierRequest struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

func (r *SaveCourierRequest) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("id must be a positive number")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func (r *SaveCourierRequest) ToDomain() *courier.Courier {
	return &courier.Courier{
		ID:    r.ID,
		Name:  strings.TrimSpace(r.Name),
		Phone: r.Phone,
	}
}

type CourierResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

func NewCourierResponse(c *courier.Courier) CourierResponse {
	if c == nil {
		return CourierResponse{}
	}
	return CourierResponse{ID: c.ID, Name: c.Name, Phone: c.Phone}
}
