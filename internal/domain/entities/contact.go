package entities

// ContactRecord is a person identified in a transcript.
type ContactRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

// Contact roles
const (
	ContactRoleCustomer = "Customer"
	ContactRoleStaff    = "Staff"
)
