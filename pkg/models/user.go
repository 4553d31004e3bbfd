package models

// Role of a user in the identity directory.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleSeller Role = "SELLER"
	RoleGuide  Role = "GUIDE"
)

// User is a record owned by the identity service. This repo only ever reads
// users; they are resolved at event-processing time to pick notification
// recipients.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
}
