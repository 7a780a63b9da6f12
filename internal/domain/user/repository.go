package user

import "context"

// UserRepository defines data access methods for users and their profiles.
type UserRepository interface {
	// Create creates an auth identity plus profile plus role assignment
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, for login
	GetByEmail(ctx context.Context, email string) (User, error)

	// ListByDepartment retrieves all users assigned to a department
	ListByDepartment(ctx context.Context, departmentID string) ([]User, error)

	// ListAll retrieves every user, for the global panel
	ListAll(ctx context.Context) ([]User, error)
}
