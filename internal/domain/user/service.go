package user

import "context"

// UserService manages account provisioning.
type UserService interface {
	// Create provisions a user with credentials, profile and role
	// (global manager only)
	Create(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error)

	// List retrieves all users (global manager only)
	List(ctx context.Context) ([]UserResponse, error)
}
