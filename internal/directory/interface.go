package directory

import "context"

// Profile describes one person in the employee directory
type Profile struct {
	EmployeeID       string   `json:"employee_id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Email            string   `json:"email"`
	Responsibilities []string `json:"responsibilities"`
}

// Directory resolves a name or employee ID to a profile. The second return
// is false when no match exists.
type Directory interface {
	Lookup(ctx context.Context, nameOrID string) (Profile, bool)
}
