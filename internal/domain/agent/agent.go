package agent

// SalesAgent is a master-data row from the comercial table. Same shape and
// rules as a customer: operator-chosen primary key, non-empty name and email.
type SalesAgent struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
