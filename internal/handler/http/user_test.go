package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	created user.CreateUserResponse
	err     error
}

func (f *fakeUserService) Create(_ context.Context, _ user.CreateUserRequest) (user.CreateUserResponse, error) {
	return f.created, f.err
}

func (f *fakeUserService) List(_ context.Context) ([]user.UserResponse, error) {
	return nil, f.err
}

func TestUserCreate_ContractBody(t *testing.T) {
	h := NewUserHandler(&fakeUserService{created: user.CreateUserResponse{
		ID:    "user-9",
		Email: "nuevo@example.com",
	}})

	body, err := json.Marshal(map[string]string{
		"email":         "nuevo@example.com",
		"password":      "secret123",
		"full_name":     "Nuevo Usuario",
		"department_id": "dept-1",
		"role":          "employee",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got struct {
		Success bool `json:"success"`
		User    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, "user-9", got.User.ID)
	assert.Equal(t, "nuevo@example.com", got.User.Email)
}

func TestUserCreate_InvalidBody(t *testing.T) {
	h := NewUserHandler(&fakeUserService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
