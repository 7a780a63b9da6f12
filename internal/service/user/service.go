package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/audit"
	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/InfElineas/Control-de-Asistencia/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ServiceImpl struct {
	user.UserRepository
	auditRepo audit.Repository
}

func NewUserService(repo user.UserRepository, auditRepo audit.Repository) user.UserService {
	return &ServiceImpl{
		UserRepository: repo,
		auditRepo:      auditRepo,
	}
}

// Create implements user.UserService. One call provisions credentials,
// profile and role together.
func (s *ServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.CreateUserResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return user.CreateUserResponse{}, err
	}
	if claims.Role != user.RoleGlobalManager {
		return user.CreateUserResponse{}, user.ErrGlobalManagerOnly
	}

	if err := req.Validate(); err != nil {
		return user.CreateUserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.CreateUserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role, _ := user.ParseRole(req.Role)

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		DepartmentID: &req.DepartmentID,
		Role:         role,
	})
	if err != nil {
		return user.CreateUserResponse{}, err
	}

	if err := s.auditRepo.Record(ctx, audit.Entry{
		UserID:    claims.UserID,
		Action:    audit.ActionUserCreated,
		TableName: "users",
		RecordID:  &created.ID,
		NewData: map[string]interface{}{
			"email":         created.Email,
			"full_name":     created.FullName,
			"department_id": req.DepartmentID,
			"role":          string(created.Role),
		},
	}); err != nil {
		slog.Error("failed to record user audit entry", "error", err)
	}

	return user.CreateUserResponse{
		ID:    created.ID,
		Email: created.Email,
	}, nil
}

// List implements user.UserService.
func (s *ServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if claims.Role != user.RoleGlobalManager {
		return nil, user.ErrGlobalManagerOnly
	}

	users, err := s.UserRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.UserResponse{
			ID:           u.ID,
			Email:        u.Email,
			FullName:     u.FullName,
			DepartmentID: u.DepartmentID,
			Role:         string(u.Role),
		})
	}
	return responses, nil
}
